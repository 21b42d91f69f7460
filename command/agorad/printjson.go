// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// print a result as indented JSON wrapped in a single-key object
func printJson(name string, message interface{}) {

	b, err := json.MarshalIndent(map[string]interface{}{name: message}, "", "  ")
	if nil != err {
		exitwithstatus.Message("json marshal error: %s", err)
	}

	fmt.Printf("%s\n", b)
}
