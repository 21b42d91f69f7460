// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/agora-forum/agorad/fault"
	"github.com/agora-forum/agorad/record"
)

// CastVote - record one ballot and bump the matching tally
//
// the ballot insert and the tally increment form one logical
// transaction; execution is serialized so no caller can observe one
// without the other
//
// if the discussion cannot be loaded after the ballot was inserted
// the ballot is left in place and the error is returned; the mismatch
// is detectable by rebuilding tallies from the vote pool
func (l *Ledger) CastVote(kind record.VoteKind, discussionId uint64, username string) (*record.Vote, error) {
	if !kind.IsValid() {
		return nil, fault.ErrInvalidVoteKind
	}

	registered, err := l.IsRegistered(username)
	if nil != err {
		return nil, err
	}
	if !registered {
		return nil, fault.ErrUserNotRegistered
	}

	existing, err := l.findVote(username, discussionId)
	if nil != err {
		return nil, err
	}
	if nil != existing {
		return nil, fault.ErrAlreadyVoted
	}

	vote := &record.Vote{
		Id:           l.generator.Next(),
		By:           username,
		DiscussionId: discussionId,
		Kind:         kind,
		CreatedAt:    timestamp(),
	}

	packed, err := vote.Pack()
	if nil != err {
		return nil, err
	}
	l.votes.Put(uint64Key(vote.Id), packed)

	discussion, err := l.getDiscussion(discussionId)
	if nil != err {
		return nil, err
	}

	switch kind {
	case record.Upvote:
		discussion.Upvotes += 1
	case record.Downvote:
		discussion.Downvotes += 1
	}

	packed, err = discussion.Pack()
	if nil != err {
		return nil, err
	}
	l.discussions.Put(uint64Key(discussionId), packed)

	l.log.Infof("vote: %s  discussion: %d  by: %q", kind, discussionId, username)
	return vote, nil
}

// RemoveVote - withdraw a ballot and drop the matching tally
//
// the tally never goes below zero: an underflow would mean the
// ballot/tally invariant was already broken, so the value saturates
// and the inconsistency is logged
func (l *Ledger) RemoveVote(discussionId uint64, username string) error {
	registered, err := l.IsRegistered(username)
	if nil != err {
		return err
	}
	if !registered {
		return fault.ErrUserNotRegistered
	}

	vote, err := l.findVote(username, discussionId)
	if nil != err {
		return err
	}
	if nil == vote {
		return fault.ErrVoteNotFound
	}

	l.votes.Delete(uint64Key(vote.Id))

	discussion, err := l.getDiscussion(discussionId)
	if nil != err {
		return err
	}

	switch vote.Kind {
	case record.Upvote:
		if 0 == discussion.Upvotes {
			l.log.Criticalf("upvote count underflow on discussion: %d", discussionId)
		} else {
			discussion.Upvotes -= 1
		}
	case record.Downvote:
		if 0 == discussion.Downvotes {
			l.log.Criticalf("downvote count underflow on discussion: %d", discussionId)
		} else {
			discussion.Downvotes -= 1
		}
	}

	packed, err := discussion.Pack()
	if nil != err {
		return err
	}
	l.discussions.Put(uint64Key(discussionId), packed)

	l.log.Infof("unvote: discussion: %d  by: %q", discussionId, username)
	return nil
}

// findVote - locate the live ballot for a (username, discussion)
// pair, nil if absent
func (l *Ledger) findVote(username string, discussionId uint64) (*record.Vote, error) {
	found := (*record.Vote)(nil)
	err := l.votes.NewFetchCursor().Map(func(key []byte, value []byte) error {
		vote, err := unpackVote(value)
		if nil != err {
			return err
		}
		if vote.By == username && vote.DiscussionId == discussionId {
			found = vote
			return errScanStop
		}
		return nil
	})
	if nil != err && errScanStop != err {
		l.log.Criticalf("vote scan failed: %s", err)
		return nil, err
	}
	return found, nil
}

// unpack a stored vote record, anything else is corruption
func unpackVote(value []byte) (*record.Vote, error) {
	r, _, err := record.Packed(value).Unpack()
	if nil != err {
		return nil, err
	}
	vote, ok := r.(*record.Vote)
	if !ok {
		return nil, fault.ErrNotLedgerRecord
	}
	return vote, nil
}
