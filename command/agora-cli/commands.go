// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli"

	"github.com/agora-forum/agorad/record"
)

func runRegisterUser(c *cli.Context) error {
	m, username, err := oneArgument(c, "USERNAME")
	if nil != err {
		return err
	}

	user, err := m.ledger.RegisterUser(username)
	if nil != err {
		return err
	}
	return printJson(m.w, user)
}

func runCreateDiscussion(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	if 2 != c.NArg() {
		return fmt.Errorf("expected: TOPIC USERNAME")
	}

	discussion, err := m.ledger.CreateDiscussion(c.Args().Get(0), c.Args().Get(1))
	if nil != err {
		return err
	}
	return printJson(m.w, discussion)
}

func runEditDiscussion(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	if 3 != c.NArg() {
		return fmt.Errorf("expected: DISCUSSION-ID NEW-TOPIC USERNAME")
	}
	discussionId, err := parseId(c.Args().Get(0))
	if nil != err {
		return err
	}

	err = m.ledger.EditDiscussion(discussionId, c.Args().Get(1), c.Args().Get(2))
	if nil != err {
		return err
	}
	return printJson(m.w, statusResult{OK: true})
}

func runVote(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	if 3 != c.NArg() {
		return fmt.Errorf("expected: up|down DISCUSSION-ID USERNAME")
	}
	kind, err := record.VoteKindFromString(c.Args().Get(0))
	if nil != err {
		return err
	}
	discussionId, err := parseId(c.Args().Get(1))
	if nil != err {
		return err
	}

	vote, err := m.ledger.CastVote(kind, discussionId, c.Args().Get(2))
	if nil != err {
		return err
	}
	return printJson(m.w, vote)
}

func runUnvote(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	if 2 != c.NArg() {
		return fmt.Errorf("expected: DISCUSSION-ID USERNAME")
	}
	discussionId, err := parseId(c.Args().Get(0))
	if nil != err {
		return err
	}

	err = m.ledger.RemoveVote(discussionId, c.Args().Get(1))
	if nil != err {
		return err
	}
	return printJson(m.w, statusResult{OK: true})
}

func runDeleteUser(c *cli.Context) error {
	m, username, err := oneArgument(c, "USERNAME")
	if nil != err {
		return err
	}

	err = m.ledger.DeleteUser(username)
	if nil != err {
		return err
	}
	return printJson(m.w, statusResult{OK: true})
}

func runListUsers(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	users, err := m.ledger.ListUsers()
	if nil != err {
		return err
	}
	return printJson(m.w, users)
}

func runListDiscussions(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}

	discussions, err := m.ledger.ListDiscussions()
	if nil != err {
		return err
	}
	return printJson(m.w, discussions)
}

func runTally(c *cli.Context) error {
	m, err := getMetadata(c)
	if nil != err {
		return err
	}
	if 1 != c.NArg() {
		return fmt.Errorf("expected: DISCUSSION-ID")
	}
	discussionId, err := parseId(c.Args().Get(0))
	if nil != err {
		return err
	}

	upvotes, downvotes, err := m.ledger.VoteTally(discussionId)
	if nil != err {
		return err
	}
	return printJson(m.w, tallyResult{
		Upvotes:   upvotes,
		Downvotes: downvotes,
	})
}

type statusResult struct {
	OK bool `json:"ok"`
}

type tallyResult struct {
	Upvotes   uint64 `json:"upvotes"`
	Downvotes uint64 `json:"downvotes"`
}

func getMetadata(c *cli.Context) (*metadata, error) {
	m, ok := c.App.Metadata["config"].(*metadata)
	if !ok {
		return nil, fmt.Errorf("programming error: no database was opened")
	}
	return m, nil
}

func oneArgument(c *cli.Context, name string) (*metadata, string, error) {
	m, err := getMetadata(c)
	if nil != err {
		return nil, "", err
	}
	if 1 != c.NArg() {
		return nil, "", fmt.Errorf("expected: %s", name)
	}
	return m, c.Args().Get(0), nil
}

func parseId(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("invalid identifier: %q", s)
	}
	return id, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
