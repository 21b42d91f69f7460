// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/agora-forum/agorad/record"
	"github.com/agora-forum/agorad/storage"
)

// dump the raw contents of one pool of a ledger database
//
// keys and values print as hex; records that unpack also print as JSON
func main() {
	if len(os.Args) < 4 {
		fmt.Printf("usage: agora-dumpdb database tag count\n")

		// this will be a struct type
		poolType := reflect.TypeOf(storage.Pool)

		// print all available tags
		fmt.Printf(" tags:\n")
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			prefixTag := fieldInfo.Tag.Get("prefix")
			fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
		}
		return
	}

	filename := os.Args[1]

	tag := os.Args[2]

	count, err := strconv.Atoi(os.Args[3])
	if nil != err {
		fmt.Printf("count error: %s\n", err)
		return
	}

	// ledger internals log somewhere harmless
	logDirectory := filepath.Join(os.TempDir(), "agora-dumpdb-log")
	if err := os.MkdirAll(logDirectory, 0700); nil != err {
		fmt.Printf("log directory error: %s\n", err)
		return
	}
	err = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "agora-dumpdb.log",
		Size:      1048576,
		Count:     2,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
	if nil != err {
		fmt.Printf("logger error: %s\n", err)
		return
	}
	defer logger.Finalise()

	err = storage.Initialise(filename, storage.ReadOnly)
	if nil != err {
		fmt.Printf("storage error: %s\n", err)
		return
	}
	defer storage.Finalise()

	// this will be a struct type
	poolType := reflect.TypeOf(storage.Pool)

	// read-only access
	poolValue := reflect.ValueOf(storage.Pool)

	// the handle
	p := (*storage.PoolHandle)(nil)
	// write access to p as a Value
	pvalue := reflect.ValueOf(&p).Elem()

	// scan each field to locate tag
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		prefixTag := fieldInfo.Tag.Get("prefix")
		if tag == prefixTag {
			pvalue.Set(poolValue.Field(i))
		}
	}
	if nil == p {
		fmt.Printf("no pool corresponding to: %q\n", tag)
		return
	}

	// dump the items as hex
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(count)
	if nil != err {
		fmt.Printf("fetch error: %s\n", err)
		return
	}
	for i, e := range data {
		fmt.Printf("%d: Key: %x\n", i, e.Key)
		fmt.Printf("%d: Val: %x\n", i, e.Value)

		unpacked, _, err := record.Packed(e.Value).Unpack()
		if nil == err {
			b, err := json.MarshalIndent(unpacked, "", "  ")
			if nil == err {
				fmt.Printf("%d: Rec: %s\n", i, b)
			}
		}
	}
}
