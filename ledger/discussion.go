// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/agora-forum/agorad/fault"
	"github.com/agora-forum/agorad/record"
)

// CreateDiscussion - add a discussion with zero tallies
//
// registration of the creator is checked against the live user table
// at call time, never cached
func (l *Ledger) CreateDiscussion(topic string, username string) (*record.Discussion, error) {
	if "" == topic {
		return nil, fault.ErrEmptyTopic
	}

	registered, err := l.IsRegistered(username)
	if nil != err {
		return nil, err
	}
	if !registered {
		return nil, fault.ErrUserNotRegistered
	}

	discussion := &record.Discussion{
		Id:        l.generator.Next(),
		Topic:     topic,
		CreatedBy: username,
		CreatedAt: timestamp(),
		Upvotes:   0,
		Downvotes: 0,
	}

	packed, err := discussion.Pack()
	if nil != err {
		return nil, err
	}
	l.discussions.Put(uint64Key(discussion.Id), packed)

	l.log.Infof("created discussion: %d  topic: %q  by: %q", discussion.Id, topic, username)
	return discussion, nil
}

// EditDiscussion - replace the topic of a discussion
//
// only the stored creator may edit; every other field is preserved
func (l *Ledger) EditDiscussion(discussionId uint64, newTopic string, username string) error {
	if "" == newTopic {
		return fault.ErrEmptyTopic
	}

	discussion, err := l.getDiscussion(discussionId)
	if nil != err {
		return err
	}

	if discussion.CreatedBy != username {
		return fault.ErrEditNotAllowed
	}

	discussion.Topic = newTopic

	packed, err := discussion.Pack()
	if nil != err {
		return err
	}
	l.discussions.Put(uint64Key(discussionId), packed)

	l.log.Infof("edited discussion: %d  topic: %q", discussionId, newTopic)
	return nil
}

// ListDiscussions - all discussions in ascending id order
func (l *Ledger) ListDiscussions() ([]*record.Discussion, error) {
	discussions := []*record.Discussion(nil)
	err := l.discussions.NewFetchCursor().Map(func(key []byte, value []byte) error {
		discussion, err := unpackDiscussion(value)
		if nil != err {
			return err
		}
		discussions = append(discussions, discussion)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return discussions, nil
}

// VoteTally - current (upvotes, downvotes) pair of a discussion
func (l *Ledger) VoteTally(discussionId uint64) (uint64, uint64, error) {
	discussion, err := l.getDiscussion(discussionId)
	if nil != err {
		return 0, 0, err
	}
	return discussion.Upvotes, discussion.Downvotes, nil
}

// getDiscussion - load a discussion record by id
func (l *Ledger) getDiscussion(discussionId uint64) (*record.Discussion, error) {
	value := l.discussions.Get(uint64Key(discussionId))
	if nil == value {
		return nil, fault.ErrDiscussionNotFound
	}
	return unpackDiscussion(value)
}

// unpack a stored discussion record, anything else is corruption
func unpackDiscussion(value []byte) (*record.Discussion, error) {
	r, _, err := record.Packed(value).Unpack()
	if nil != err {
		return nil, err
	}
	discussion, ok := r.(*record.Discussion)
	if !ok {
		return nil, fault.ErrNotLedgerRecord
	}
	return discussion, nil
}
