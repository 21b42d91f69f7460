// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strings"

	"github.com/agora-forum/agorad/fault"
)

// VoteKind - ballot direction enumeration
//
// the zero value is deliberately invalid: every construction site
// must pick a direction explicitly
type VoteKind uint64

// possible vote kind values
const (
	Nothing      VoteKind = iota // this must be the first value
	Upvote       VoteKind = iota
	Downvote     VoteKind = iota
	maximumValue VoteKind = iota // this must be the last value
)

// internal conversion
func toString(k VoteKind) ([]byte, error) {
	switch k {
	case Upvote:
		return []byte("upvote"), nil
	case Downvote:
		return []byte("downvote"), nil
	default:
		return []byte{}, fault.ErrInvalidVoteKind
	}
}

// convert a string to a vote kind
func fromString(in string) (VoteKind, error) {
	switch strings.ToLower(in) {
	case "up", "upvote":
		return Upvote, nil
	case "down", "downvote":
		return Downvote, nil
	default:
		return Nothing, fault.ErrInvalidVoteKind
	}
}

// VoteKindFromString - parse a vote kind from its string form
func VoteKindFromString(in string) (VoteKind, error) {
	return fromString(in)
}

// VoteKindFromUint64 - validate a numeric value from a packed record
func VoteKindFromUint64(value uint64) (VoteKind, error) {
	k := VoteKind(value)
	if k <= Nothing || k >= maximumValue {
		return Nothing, fault.ErrInvalidVoteKind
	}
	return k, nil
}

// Uint64 - numeric value for packing
func (kind VoteKind) Uint64() uint64 {
	return uint64(kind)
}

// IsValid - check the value is one of the two directions
func (kind VoteKind) IsValid() bool {
	return kind > Nothing && kind < maximumValue
}

// String - convert a vote kind to its string form
func (kind VoteKind) String() string {
	s, err := toString(kind)
	if nil != err {
		return fmt.Sprintf("*invalid vote kind: %d*", uint64(kind))
	}
	return string(s)
}

// GoString - show enum value and symbol, for debugging
func (kind VoteKind) GoString() string {
	return fmt.Sprintf("<VoteKind#%d:%q>", uint64(kind), kind.String())
}

// MarshalText - convert a vote kind into JSON
func (kind VoteKind) MarshalText() ([]byte, error) {
	return toString(kind)
}

// UnmarshalText - convert a vote kind string from JSON
func (kind *VoteKind) UnmarshalText(s []byte) error {
	k, err := fromString(string(s))
	if nil != err {
		return err
	}
	*kind = k
	return nil
}
