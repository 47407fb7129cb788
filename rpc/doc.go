// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle the JSON RPC server
//
// the services are provided over TLS; each client connection runs the
// JSON codec until the client disconnects, subject to a global
// connection limit
package rpc
