// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/agora-forum/agorad/fault"
	"github.com/agora-forum/agorad/record"
)

// RegisterUser - add a user record
//
// the username must be non-empty and not in use by any live user
func (l *Ledger) RegisterUser(username string) (*record.User, error) {
	if "" == username {
		return nil, fault.ErrEmptyUsername
	}

	existing, err := l.findUser(username)
	if nil != err {
		return nil, err
	}
	if nil != existing {
		return nil, fault.ErrUsernameAlreadyExists
	}

	user := &record.User{
		Id:        l.generator.Next(),
		Username:  username,
		CreatedAt: timestamp(),
	}

	packed, err := user.Pack()
	if nil != err {
		return nil, err
	}
	l.users.Put(uint64Key(user.Id), packed)

	l.log.Infof("registered user: %q  id: %d", username, user.Id)
	return user, nil
}

// DeleteUser - remove a user and cascade
//
// three steps as one logical unit:
//  1. remove the user record
//  2. remove every vote cast by the user; the tallies on the voted
//     discussions are NOT adjusted - the historical weight of the
//     removed ballots is retained deliberately
//  3. rewrite created_by on the user's discussions to the anonymous
//     sentinel, all other fields untouched
func (l *Ledger) DeleteUser(username string) error {
	user, err := l.findUser(username)
	if nil != err {
		return err
	}
	if nil == user {
		return fault.ErrUserNotFound
	}

	// step 1: the user record goes first so a partial cascade cannot
	// leave a live user with missing ballots
	l.users.Delete(uint64Key(user.Id))

	// step 2: collect then remove the user's ballots
	voteIds := []uint64(nil)
	err = l.votes.NewFetchCursor().Map(func(key []byte, value []byte) error {
		vote, err := unpackVote(value)
		if nil != err {
			return err
		}
		if vote.By == username {
			voteIds = append(voteIds, vote.Id)
		}
		return nil
	})
	if nil != err {
		l.log.Criticalf("delete user: %q vote scan failed: %s", username, err)
		return err
	}
	for _, id := range voteIds {
		l.votes.Delete(uint64Key(id))
	}

	// step 3: anonymize the user's discussions
	anonymize := []*record.Discussion(nil)
	err = l.discussions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		discussion, err := unpackDiscussion(value)
		if nil != err {
			return err
		}
		if discussion.CreatedBy == username {
			anonymize = append(anonymize, discussion)
		}
		return nil
	})
	if nil != err {
		l.log.Criticalf("delete user: %q discussion scan failed: %s", username, err)
		return err
	}
	for _, discussion := range anonymize {
		discussion.CreatedBy = AnonymousCreator
		packed, err := discussion.Pack()
		if nil != err {
			return err
		}
		l.discussions.Put(uint64Key(discussion.Id), packed)
	}

	l.log.Infof("deleted user: %q  votes removed: %d  discussions anonymized: %d",
		username, len(voteIds), len(anonymize))
	return nil
}

// ListUsers - all live users in ascending id order
func (l *Ledger) ListUsers() ([]*record.User, error) {
	users := []*record.User(nil)
	err := l.users.NewFetchCursor().Map(func(key []byte, value []byte) error {
		user, err := unpackUser(value)
		if nil != err {
			return err
		}
		users = append(users, user)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return users, nil
}

// IsRegistered - check a username belongs to a live user
func (l *Ledger) IsRegistered(username string) (bool, error) {
	user, err := l.findUser(username)
	if nil != err {
		return false, err
	}
	return nil != user, nil
}

// findUser - locate a live user record by username, nil if absent
func (l *Ledger) findUser(username string) (*record.User, error) {
	found := (*record.User)(nil)
	err := l.users.NewFetchCursor().Map(func(key []byte, value []byte) error {
		user, err := unpackUser(value)
		if nil != err {
			return err
		}
		if user.Username == username {
			found = user
			return errScanStop
		}
		return nil
	})
	if nil != err && errScanStop != err {
		l.log.Criticalf("user scan failed: %s", err)
		return nil, err
	}
	return found, nil
}

// unpack a stored user record, anything else is corruption
func unpackUser(value []byte) (*record.User, error) {
	r, _, err := record.Packed(value).Unpack()
	if nil != err {
		return nil, err
	}
	user, ok := r.(*record.User)
	if !ok {
		return nil, fault.ErrNotLedgerRecord
	}
	return user, nil
}
