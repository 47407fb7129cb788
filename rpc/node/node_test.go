// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/network"
	"github.com/bitmark-inc/tokend/registry"
	"github.com/bitmark-inc/tokend/rpc/fixtures"
	"github.com/bitmark-inc/tokend/rpc/mocks"
	"github.com/bitmark-inc/tokend/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	var rpcCount counter.Counter
	rpcCount.Increment()

	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now().Add(-time.Minute),
		"7.5",
		&rpcCount,
		r,
	)

	r.EXPECT().TotalSupply().Return(uint64(8)).Times(1)
	r.EXPECT().Minted().Return(uint64(10)).Times(1)
	r.EXPECT().Burned().Return(uint64(2)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, network.Testing, reply.Network, "wrong network")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(8), reply.TotalSupply, "wrong supply")
	assert.Equal(t, uint64(10), reply.Minted, "wrong minted")
	assert.Equal(t, uint64(2), reply.Burned, "wrong burned")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong rpc count")
	assert.Equal(t, registry.Capabilities(), reply.Capabilities, "wrong capabilities")
	assert.Equal(t, "7.5", reply.Version, "wrong version")
	assert.NotEmpty(t, reply.Uptime, "missing uptime")
}
