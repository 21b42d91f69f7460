// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/agora-forum/agorad/ledger"
	"github.com/agora-forum/agorad/record"
)

// tally result for JSON output
type tally struct {
	Upvotes   uint64 `json:"upvotes"`
	Downvotes uint64 `json:"downvotes"`
}

// command handler
//
// runs exactly one ledger operation named by the arguments, printing
// the result as JSON; validation failures exit non-zero
func processCommand(program string, l *ledger.Ledger, arguments []string) {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "register-user":
		checkArguments(program, command, arguments, 1)
		user, err := l.RegisterUser(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("user", user)

	case "create-discussion":
		checkArguments(program, command, arguments, 2)
		discussion, err := l.CreateDiscussion(arguments[0], arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("discussion", discussion)

	case "edit-discussion":
		checkArguments(program, command, arguments, 3)
		discussionId := parseId(program, arguments[0])
		err := l.EditDiscussion(discussionId, arguments[1], arguments[2])
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("edited", discussionId)

	case "vote":
		checkArguments(program, command, arguments, 3)
		kind, err := record.VoteKindFromString(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		discussionId := parseId(program, arguments[1])
		vote, err := l.CastVote(kind, discussionId, arguments[2])
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("vote", vote)

	case "unvote":
		checkArguments(program, command, arguments, 2)
		discussionId := parseId(program, arguments[0])
		err := l.RemoveVote(discussionId, arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("unvoted", discussionId)

	case "delete-user":
		checkArguments(program, command, arguments, 1)
		err := l.DeleteUser(arguments[0])
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("deleted", arguments[0])

	case "list-users":
		users, err := l.ListUsers()
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("users", users)

	case "list-discussions":
		discussions, err := l.ListDiscussions()
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("discussions", discussions)

	case "tally":
		checkArguments(program, command, arguments, 1)
		discussionId := parseId(program, arguments[0])
		upvotes, downvotes, err := l.VoteTally(discussionId)
		if nil != err {
			exitwithstatus.Message("%s: %s error: %s", program, command, err)
		}
		printJson("tally", tally{
			Upvotes:   upvotes,
			Downvotes: downvotes,
		})

	case "help":
		printHelp(program)

	default:
		exitwithstatus.Message("%s: unknown command: %q", program, command)
	}
}

func checkArguments(program string, command string, arguments []string, count int) {
	if len(arguments) != count {
		exitwithstatus.Message("%s: %s needs %d arguments, %d were detected", program, command, count, len(arguments))
	}
}

func parseId(program string, s string) uint64 {
	id, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		exitwithstatus.Message("%s: invalid identifier: %q error: %s", program, s, err)
	}
	return id
}
