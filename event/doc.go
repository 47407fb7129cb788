// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - notification queue
//
// the registry announces every completed mint, transfer, burn,
// approval and operator change on a buffered queue; delivery is fire
// and forget, a full queue drops the oldest entries rather than
// blocking the ledger
package event
