// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persistent ledger records
//
// each record kind is stored packed: a Varint64 type tag followed by
// the fields in struct order, strings prefixed by a Varint64 length
package record

// TagType - type code of a packed record
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	UserTag       = TagType(iota) // registered user
	DiscussionTag = TagType(iota) // discussion topic with tallies
	VoteTag       = TagType(iota) // one ballot

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// User - a registered forum member
//
// the username is unique among live users; the physical key of the
// record is the identifier
type User struct {
	Id        uint64 `json:"id,string"`
	Username  string `json:"username"`
	CreatedAt uint64 `json:"createdAt,string"`
}

// Discussion - a topic with its current vote tallies
//
// the tallies always equal the count of live votes referencing the
// discussion, except after a user deletion cascade which retains the
// removed ballots' weight
type Discussion struct {
	Id        uint64 `json:"id,string"`
	Topic     string `json:"topic"`
	CreatedBy string `json:"createdBy"`
	CreatedAt uint64 `json:"createdAt,string"`
	Upvotes   uint64 `json:"upvotes"`
	Downvotes uint64 `json:"downvotes"`
}

// Vote - one ballot by one user on one discussion
type Vote struct {
	Id           uint64   `json:"id,string"`
	By           string   `json:"by"`
	DiscussionId uint64   `json:"discussionId,string"`
	Kind         VoteKind `json:"kind"`
	CreatedAt    uint64   `json:"createdAt,string"`
}
