// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/agora-forum/agorad/identifier"
	"github.com/agora-forum/agorad/ledger"
	"github.com/agora-forum/agorad/storage"
)

type metadata struct {
	database string
	ledger   *ledger.Ledger
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "agora-cli"
	app.Usage = "forum ledger command-line client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: "*ledger database `DIRECTORY`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "register-user",
			Usage:     "add a new user to the ledger",
			ArgsUsage: "USERNAME",
			Action:    runRegisterUser,
		},
		{
			Name:      "create-discussion",
			Usage:     "open a new discussion",
			ArgsUsage: "TOPIC USERNAME",
			Action:    runCreateDiscussion,
		},
		{
			Name:      "edit-discussion",
			Usage:     "replace the topic of an owned discussion",
			ArgsUsage: "DISCUSSION-ID NEW-TOPIC USERNAME",
			Action:    runEditDiscussion,
		},
		{
			Name:      "vote",
			Usage:     "cast a vote on a discussion",
			ArgsUsage: "up|down DISCUSSION-ID USERNAME",
			Action:    runVote,
		},
		{
			Name:      "unvote",
			Usage:     "retract a previously cast vote",
			ArgsUsage: "DISCUSSION-ID USERNAME",
			Action:    runUnvote,
		},
		{
			Name:      "delete-user",
			Usage:     "remove a user, their ballots and their attribution",
			ArgsUsage: "USERNAME",
			Action:    runDeleteUser,
		},
		{
			Name:   "list-users",
			Usage:  "list all registered users",
			Action: runListUsers,
		},
		{
			Name:   "list-discussions",
			Usage:  "list all discussions",
			Action: runListDiscussions,
		},
		{
			Name:      "tally",
			Usage:     "display the vote tally of a discussion",
			ArgsUsage: "DISCUSSION-ID",
			Action:    runTally,
		},
		{
			Name:  "version",
			Usage: "display agora-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// open the database
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		database := c.GlobalString("database")
		if "" == database {
			return fmt.Errorf("database directory is not set")
		}

		// quiet logger so ledger internals have a destination
		logDirectory := filepath.Join(os.TempDir(), app.Name+"-log")
		if err := os.MkdirAll(logDirectory, 0700); nil != err {
			return err
		}
		err := logger.Initialise(logger.Configuration{
			Directory: logDirectory,
			File:      app.Name + ".log",
			Size:      1048576,
			Count:     2,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		})
		if nil != err {
			return err
		}

		err = storage.Initialise(database, storage.ReadWrite)
		if nil != err {
			return err
		}

		m := &metadata{
			database: database,
			ledger: ledger.New(
				storage.Pool.Users,
				storage.Pool.Discussions,
				storage.Pool.Votes,
				identifier.New(storage.Pool.Control),
			),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		return nil
	}

	app.After = func(c *cli.Context) error {
		if nil != c.App.Metadata["config"] {
			storage.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
