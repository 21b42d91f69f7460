// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++            = concatenation of byte data
// 3. id            = record identifier as big endian uint64 (8 bytes)
//                    so LevelDB byte order is also numeric order
//
// Users:
//
//   U ++ id          - registered users
//                      data: packed user record
//
// Discussions:
//
//   D ++ id          - discussion topics with current vote counts
//                      data: packed discussion record
//
// Votes:
//
//   V ++ id          - one ballot per user per discussion
//                      data: packed vote record
//
// Control:
//
//   C ++ "N"         - last allocated identifier, shared by all pools
//                      data: big endian uint64 (8 bytes)
//
// Testing:
//
//   Z ++ key         - testing data
package storage
