// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// a configuration file is a Lua program whose final expression is a
// table; the table is mapped onto a Go structure using gluamapper
// tags, so configurations can compute values, share variables and
// include other files
package configuration
