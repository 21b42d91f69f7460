// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Agora Forum
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the forum ledger operations
//
// all mutations go through a Ledger, which owns the three record
// pools and the identifier generator; callers are expected to invoke
// operations one at a time (single writer), every operation reads,
// validates and writes against the durable store with no state held
// between calls
//
// consistency rules:
//
// 1. at most one live user record per username
// 2. at most one live vote per (username, discussion) pair
// 3. discussion tallies equal the count of live votes of each kind,
//    except that deleting a user removes the ballots while keeping
//    their weight in the tallies
// 4. identifiers are allocated from one shared counter and are
//    unique across all record kinds
package ledger
