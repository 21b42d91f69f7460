// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-forum/agorad/identifier"
	"github.com/agora-forum/agorad/storage"
)

const databaseFileName = "test-identifier.leveldb"

func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	require.NoError(t, err)
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

func TestNextIsStrictlyIncreasing(t *testing.T) {
	setup(t)
	defer teardown(t)

	g := identifier.New(storage.Pool.Control)

	assert.Equal(t, uint64(0), g.Current())

	previous := uint64(0)
	for i := 0; i < 100; i += 1 {
		n := g.Next()
		assert.True(t, n > previous, "identifier regressed: %d after %d", n, previous)
		previous = n
	}
	assert.Equal(t, previous, g.Current())
}

func TestCounterSurvivesRestart(t *testing.T) {
	setup(t)
	defer teardown(t)

	g := identifier.New(storage.Pool.Control)
	for i := 0; i < 10; i += 1 {
		g.Next()
	}
	last := g.Current()
	require.Equal(t, uint64(10), last)

	storage.Finalise()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	require.NoError(t, err)

	g = identifier.New(storage.Pool.Control)
	assert.Equal(t, last, g.Current())
	assert.Equal(t, last+1, g.Next())
}
