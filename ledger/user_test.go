// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-forum/agorad/fault"
	"github.com/agora-forum/agorad/ledger"
	"github.com/agora-forum/agorad/record"
)

func TestRegisterUser(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	// empty username is rejected before any write
	_, err := l.RegisterUser("")
	assert.Equal(t, fault.ErrEmptyUsername, err)

	alice, err := l.RegisterUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice.Username)
	assert.True(t, alice.Id > 0, "zero identifier allocated")
	assert.True(t, alice.CreatedAt > 0, "zero timestamp")

	// duplicate usernames are rejected
	_, err = l.RegisterUser("alice")
	assert.Equal(t, fault.ErrUsernameAlreadyExists, err)

	users, err := l.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, *alice, *users[0])
}

// a username beyond the record field limit must be rejected without
// storing anything, otherwise the stored record could never be
// unpacked and every later scan of the users pool would fail
func TestRegisterUserOversizeName(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	_, err := l.RegisterUser(strings.Repeat("a", 9000))
	assert.Equal(t, fault.ErrUsernameTooLong, err)

	// the pool is still fully usable
	bob, err := l.RegisterUser("bob")
	require.NoError(t, err)

	users, err := l.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, *bob, *users[0])
}

func TestUsernameUniqueAcrossSequences(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	// register, delete, re-register is allowed; a username is only
	// reserved while its user is live
	_, err := l.RegisterUser("bob")
	require.NoError(t, err)
	require.NoError(t, l.DeleteUser("bob"))

	bob, err := l.RegisterUser("bob")
	require.NoError(t, err)

	users, err := l.ListUsers()
	require.NoError(t, err)

	seen := map[string]int{}
	for _, u := range users {
		seen[u.Username] += 1
	}
	assert.Equal(t, 1, seen["bob"])
	assert.Equal(t, bob.Id, users[0].Id)
}

func TestDeleteUserNotFound(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	err := l.DeleteUser("nobody")
	assert.Equal(t, fault.ErrUserNotFound, err)
}

func TestDeleteUserCascade(t *testing.T) {
	l := setup(t)
	defer teardown(t)

	_, err := l.RegisterUser("alice")
	require.NoError(t, err)
	_, err = l.RegisterUser("bob")
	require.NoError(t, err)

	byAlice, err := l.CreateDiscussion("kept by alice", "alice")
	require.NoError(t, err)
	byBob, err := l.CreateDiscussion("anonymized", "bob")
	require.NoError(t, err)

	_, err = l.CastVote(record.Upvote, byAlice.Id, "bob")
	require.NoError(t, err)
	_, err = l.CastVote(record.Downvote, byAlice.Id, "alice")
	require.NoError(t, err)

	up, down, err := l.VoteTally(byAlice.Id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), up)
	assert.Equal(t, uint64(1), down)

	require.NoError(t, l.DeleteUser("bob"))

	// user record is gone
	registered, err := l.IsRegistered("bob")
	require.NoError(t, err)
	assert.False(t, registered)

	// bob's ballot is gone but its weight is retained in the tallies;
	// this deviation from the ballot/tally rule is deliberate
	up, down, err = l.VoteTally(byAlice.Id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), up)
	assert.Equal(t, uint64(1), down)

	// the ballot really is gone: a re-registered bob can vote again
	_, err = l.RegisterUser("bob")
	require.NoError(t, err)
	_, err = l.CastVote(record.Upvote, byAlice.Id, "bob")
	require.NoError(t, err)

	// bob's discussion is preserved under the sentinel creator
	discussions, err := l.ListDiscussions()
	require.NoError(t, err)
	require.Len(t, discussions, 2)
	for _, d := range discussions {
		switch d.Id {
		case byAlice.Id:
			assert.Equal(t, "alice", d.CreatedBy)
		case byBob.Id:
			assert.Equal(t, ledger.AnonymousCreator, d.CreatedBy)
			assert.Equal(t, byBob.Topic, d.Topic)
			assert.Equal(t, byBob.CreatedAt, d.CreatedAt)
		default:
			t.Errorf("unexpected discussion: %v", d)
		}
	}
}
