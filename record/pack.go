// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/agora-forum/agorad/fault"
	"github.com/agora-forum/agorad/util"
)

// Pack - pack a User
//
// Varint64(tag) followed by fields in order as struct above
//
// field lengths are checked here so that every stored record can be
// unpacked again; Unpack clips string fields to the same range
func (user *User) Pack() (Packed, error) {
	if len(user.Username) < minFieldLength {
		return nil, fault.ErrEmptyUsername
	}
	if len(user.Username) > maxFieldLength {
		return nil, fault.ErrUsernameTooLong
	}

	// concatenate bytes
	message := Packed(util.ToVarint64(uint64(UserTag)))
	message = appendUint64(message, user.Id)
	message = appendString(message, user.Username)
	message = appendUint64(message, user.CreatedAt)
	return message, nil
}

// Pack - pack a Discussion
//
// Varint64(tag) followed by fields in order as struct above
func (discussion *Discussion) Pack() (Packed, error) {
	if len(discussion.Topic) < minFieldLength {
		return nil, fault.ErrEmptyTopic
	}
	if len(discussion.Topic) > maxFieldLength {
		return nil, fault.ErrTopicTooLong
	}
	if len(discussion.CreatedBy) < minFieldLength {
		return nil, fault.ErrEmptyUsername
	}
	if len(discussion.CreatedBy) > maxFieldLength {
		return nil, fault.ErrUsernameTooLong
	}

	// concatenate bytes
	message := Packed(util.ToVarint64(uint64(DiscussionTag)))
	message = appendUint64(message, discussion.Id)
	message = appendString(message, discussion.Topic)
	message = appendString(message, discussion.CreatedBy)
	message = appendUint64(message, discussion.CreatedAt)
	message = appendUint64(message, discussion.Upvotes)
	message = appendUint64(message, discussion.Downvotes)
	return message, nil
}

// Pack - pack a Vote
//
// Varint64(tag) followed by fields in order as struct above
//
// the vote kind has no default: an unset kind is a pack error
func (vote *Vote) Pack() (Packed, error) {
	if !vote.Kind.IsValid() {
		return nil, fault.ErrInvalidVoteKind
	}
	if len(vote.By) < minFieldLength {
		return nil, fault.ErrEmptyUsername
	}
	if len(vote.By) > maxFieldLength {
		return nil, fault.ErrUsernameTooLong
	}

	// concatenate bytes
	message := Packed(util.ToVarint64(uint64(VoteTag)))
	message = appendUint64(message, vote.Id)
	message = appendString(message, vote.By)
	message = appendUint64(message, vote.DiscussionId)
	message = appendUint64(message, vote.Kind.Uint64())
	message = appendUint64(message, vote.CreatedAt)
	return message, nil
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
