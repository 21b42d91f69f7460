// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - durable allocation of record identifiers
//
// a single counter cell is shared by every record kind, so an
// identifier is unique across users, discussions and votes and is
// never reused, even across a process restart
package identifier

import (
	"github.com/agora-forum/agorad/storage"
)

// key of the counter cell inside the control pool
var counterKey = []byte("N")

// Generator - hands out strictly increasing identifiers
type Generator struct {
	control *storage.PoolHandle
}

// New - create a generator over the control pool
//
// the cell holds the last allocated value; a missing cell means
// nothing has been allocated yet and the first value will be 1
func New(control *storage.PoolHandle) *Generator {
	return &Generator{
		control: control,
	}
}

// Next - allocate one identifier
//
// the new value is durably recorded before it is handed out, so a
// crash between allocation and use never reuses an identifier
func (g *Generator) Next() uint64 {
	last, _ := g.control.GetN(counterKey)
	next := last + 1
	g.control.PutN(counterKey, next)
	return next
}

// Current - last allocated identifier, zero if none yet
func (g *Generator) Current() uint64 {
	last, _ := g.control.GetN(counterKey)
	return last
}
