// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/agora-forum/agorad/identifier"
	"github.com/agora-forum/agorad/ledger"
	"github.com/agora-forum/agorad/storage"
)

const (
	testingDirName   = "testing"
	databaseFileName = testingDirName + "/test-ledger.leveldb"
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setupTestLogger() {
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// configure for testing, returning a fresh ledger over an empty store
func setup(t *testing.T) *ledger.Ledger {
	removeFiles()
	setupTestLogger()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return newLedger()
}

// rebuild a ledger over the currently open store
func newLedger() *ledger.Ledger {
	return ledger.New(
		storage.Pool.Users,
		storage.Pool.Discussions,
		storage.Pool.Votes,
		identifier.New(storage.Pool.Control),
	)
}

// simulate a process restart, returning a recovered ledger
func restart(t *testing.T) *ledger.Ledger {
	storage.Finalise()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return newLedger()
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}
