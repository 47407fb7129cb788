// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/registry"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry registry.Registry
	counter  *counter.Counter
}

func New(log *logger.L, start time.Time, version string, rpcCount *counter.Counter, rg registry.Registry) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: rg,
		counter:  rpcCount,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Network      string   `json:"network"`
	Mode         string   `json:"mode"`
	TotalSupply  uint64   `json:"totalSupply,string"`
	Minted       uint64   `json:"minted,string"`
	Burned       uint64   `json:"burned,string"`
	RPCs         uint64   `json:"rpcs"`
	Capabilities []uint32 `json:"capabilities"`
	Version      string   `json:"version"`
	Uptime       string   `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Network = mode.NetworkName()
	reply.Mode = mode.String()
	reply.TotalSupply = node.Registry.TotalSupply()
	reply.Minted = node.Registry.Minted()
	reply.Burned = node.Registry.Burned()
	reply.RPCs = node.counter.Uint64()
	reply.Capabilities = registry.Capabilities()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
