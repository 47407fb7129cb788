// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database split into prefixed pools,
// one pool for each class of registry data
//
// the transaction layer stages writes into a batch with a
// read-your-writes cache so that a whole registry operation either
// commits as one unit or is aborted leaving the database untouched
package storage
