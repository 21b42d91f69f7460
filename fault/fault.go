// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type ForbiddenError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type NotRegisteredError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrAlreadyVoted          = ExistsError("user has already voted on this discussion")
	ErrDiscussionNotFound    = NotFoundError("discussion not found")
	ErrEditNotAllowed        = ForbiddenError("only the creator can edit the discussion")
	ErrEmptyTopic            = InvalidError("topic is required")
	ErrEmptyUsername         = InvalidError("username is required")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidVoteKind       = InvalidError("invalid vote kind")
	ErrNotInitialised        = ProcessError("not initialised")
	ErrNotLedgerRecord       = InvalidError("not a ledger record")
	ErrTopicTooLong          = InvalidError("topic too long")
	ErrUserNotFound          = NotFoundError("user not found")
	ErrUserNotRegistered     = NotRegisteredError("user is not registered")
	ErrUsernameAlreadyExists = ExistsError("username already exists")
	ErrUsernameTooLong       = InvalidError("username too long")
	ErrVoteNotFound          = NotFoundError("vote not found")
	ErrWrongDatabaseVersion  = ProcessError("wrong database version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string        { return string(e) }
func (e ForbiddenError) Error() string     { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e NotRegisteredError) Error() string { return string(e) }
func (e ProcessError) Error() string       { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrForbidden(e error) bool     { _, ok := e.(ForbiddenError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrNotRegistered(e error) bool { _, ok := e.(NotRegisteredError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
