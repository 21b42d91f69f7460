// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"errors"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/agora-forum/agorad/identifier"
	"github.com/agora-forum/agorad/storage"
)

// AnonymousCreator - substituted for created_by when the owning user
// is deleted; the discussion itself is preserved
const AnonymousCreator = "Anonymous"

// Ledger - the combined users/discussions/votes state plus the
// identifier generator
type Ledger struct {
	users       *storage.PoolHandle
	discussions *storage.PoolHandle
	votes       *storage.PoolHandle
	generator   *identifier.Generator
	log         *logger.L
}

// New - create a ledger over its pools
//
// the generator must be backed by the same database as the pools so
// that a restart recovers both together
func New(users, discussions, votes *storage.PoolHandle, generator *identifier.Generator) *Ledger {
	return &Ledger{
		users:       users,
		discussions: discussions,
		votes:       votes,
		generator:   generator,
		log:         logger.New("ledger"),
	}
}

// used to break out of a storage scan early
var errScanStop = errors.New("scan stop")

// record keys are big endian so pool order is ascending id order
func uint64Key(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func timestamp() uint64 {
	return uint64(time.Now().UnixNano())
}
