// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/agora-forum/agorad/fault"
	"github.com/agora-forum/agorad/util"
)

// allowed byte length range for string fields, enforced when packing
// and clipped when unpacking
const (
	minFieldLength = 1
	maxFieldLength = 8192
)

// Unpack - turn a byte slice back into a record
//
// must cast result to the correct type
//
// e.g.
//   user, ok := result.(*record.User)
// or:
//   switch r := result.(type) {
//   case *record.User:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if rec := recover(); nil != rec {
			e = fault.ErrNotLedgerRecord
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.ErrNotLedgerRecord
	}

unpack_switch:
	switch TagType(recordType) {

	case UserTag:

		id, idLength := util.FromVarint64(record[n:])
		if 0 == idLength {
			break unpack_switch
		}
		n += idLength

		username, usernameLength := unpackString(record[n:])
		if 0 == usernameLength {
			break unpack_switch
		}
		n += usernameLength

		createdAt, createdAtLength := util.FromVarint64(record[n:])
		if 0 == createdAtLength {
			break unpack_switch
		}
		n += createdAtLength

		r := &User{
			Id:        id,
			Username:  username,
			CreatedAt: createdAt,
		}
		return r, n, nil

	case DiscussionTag:

		id, idLength := util.FromVarint64(record[n:])
		if 0 == idLength {
			break unpack_switch
		}
		n += idLength

		topic, topicLength := unpackString(record[n:])
		if 0 == topicLength {
			break unpack_switch
		}
		n += topicLength

		createdBy, createdByLength := unpackString(record[n:])
		if 0 == createdByLength {
			break unpack_switch
		}
		n += createdByLength

		createdAt, createdAtLength := util.FromVarint64(record[n:])
		if 0 == createdAtLength {
			break unpack_switch
		}
		n += createdAtLength

		upvotes, upvotesLength := util.FromVarint64(record[n:])
		if 0 == upvotesLength {
			break unpack_switch
		}
		n += upvotesLength

		downvotes, downvotesLength := util.FromVarint64(record[n:])
		if 0 == downvotesLength {
			break unpack_switch
		}
		n += downvotesLength

		r := &Discussion{
			Id:        id,
			Topic:     topic,
			CreatedBy: createdBy,
			CreatedAt: createdAt,
			Upvotes:   upvotes,
			Downvotes: downvotes,
		}
		return r, n, nil

	case VoteTag:

		id, idLength := util.FromVarint64(record[n:])
		if 0 == idLength {
			break unpack_switch
		}
		n += idLength

		by, byLength := unpackString(record[n:])
		if 0 == byLength {
			break unpack_switch
		}
		n += byLength

		discussionId, discussionIdLength := util.FromVarint64(record[n:])
		if 0 == discussionIdLength {
			break unpack_switch
		}
		n += discussionIdLength

		kindValue, kindLength := util.FromVarint64(record[n:])
		if 0 == kindLength {
			break unpack_switch
		}
		n += kindLength
		kind, err := VoteKindFromUint64(kindValue)
		if nil != err {
			return nil, 0, err
		}

		createdAt, createdAtLength := util.FromVarint64(record[n:])
		if 0 == createdAtLength {
			break unpack_switch
		}
		n += createdAtLength

		r := &Vote{
			Id:           id,
			By:           by,
			DiscussionId: discussionId,
			Kind:         kind,
			CreatedAt:    createdAt,
		}
		return r, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.ErrNotLedgerRecord
}

// unpack a length prefixed string field
//
// returns the string and total bytes consumed, zero on error
func unpackString(buffer Packed) (string, int) {
	length, offset := util.ClippedVarint64(buffer, minFieldLength, maxFieldLength)
	if 0 == offset {
		return "", 0
	}
	if len(buffer) < offset+length {
		return "", 0
	}
	s := string(buffer[offset : offset+length])
	return s, offset + length
}
