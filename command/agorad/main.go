// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/agora-forum/agorad/identifier"
	"github.com/agora-forum/agorad/ledger"
	"github.com/agora-forum/agorad/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 {
		printHelp(program)
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// the database directory must exist
	databaseDirectory := theConfiguration.Database.Directory
	if err := os.MkdirAll(databaseDirectory, 0700); nil != err {
		exitwithstatus.Message("%s: database directory: %q creation failed, error: %s", program, databaseDirectory, err)
	}

	database := filepath.Join(databaseDirectory, theConfiguration.Database.Name)
	log.Infof("database: %q", database)

	err = storage.Initialise(database, storage.ReadWrite)
	if nil != err {
		exitwithstatus.Message("%s: storage initialise error: %s", program, err)
	}
	defer storage.Finalise()

	l := ledger.New(
		storage.Pool.Users,
		storage.Pool.Discussions,
		storage.Pool.Votes,
		identifier.New(storage.Pool.Control),
	)

	processCommand(program, l, arguments)
}

func printHelp(program string) {
	fmt.Printf("usage: %s --config-file=FILE command [arguments]\n", program)
	fmt.Printf("\n")
	fmt.Printf("commands:\n")
	fmt.Printf("  register-user USERNAME\n")
	fmt.Printf("  create-discussion TOPIC USERNAME\n")
	fmt.Printf("  edit-discussion DISCUSSION-ID NEW-TOPIC USERNAME\n")
	fmt.Printf("  vote up|down DISCUSSION-ID USERNAME\n")
	fmt.Printf("  unvote DISCUSSION-ID USERNAME\n")
	fmt.Printf("  delete-user USERNAME\n")
	fmt.Printf("  list-users\n")
	fmt.Printf("  list-discussions\n")
	fmt.Printf("  tally DISCUSSION-ID\n")
}
