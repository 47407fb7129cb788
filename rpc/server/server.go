// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/registry"
	"github.com/bitmark-inc/tokend/rpc/node"
	"github.com/bitmark-inc/tokend/rpc/owner"
	"github.com/bitmark-inc/tokend/rpc/token"
)

// Create - make a server with all of the tokend services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(token.New(log, mode.Is, registry.Get()))
	_ = server.Register(owner.New(log, mode.Is, registry.Get()))
	_ = server.Register(node.New(log, start, version, rpcCount, registry.Get()))

	return server
}
