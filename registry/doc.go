// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the token ledger
//
// four views over the same token set are kept in step inside a single
// database transaction:
//
//  1. ownership store:    token id → owner, owner → balance
//  2. global enumeration: dense index → token id, plus inverse
//  3. owner enumeration:  owner ⧺ dense index → token id, plus inverse
//  4. authorisation:      token id → delegate, owner ⧺ operator → flag
//
// both enumerations stay dense under removal by moving the final entry
// into the vacated slot, so positions are stable only until the next
// retirement
//
// every mutating call commits all of its pool updates or none of them;
// a failed precondition aborts the transaction before any write can
// reach the database
package registry
