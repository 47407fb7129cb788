// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/network"
	"github.com/bitmark-inc/tokend/rpc/fixtures"
	"github.com/bitmark-inc/tokend/rpc/mocks"
	"github.com/bitmark-inc/tokend/rpc/token"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

func testAccount(publicKey []byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

func TestTokenOwner(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	acc := testAccount(fixtures.OwnerPublicKey)
	tokenId := tokenrecord.TokenId(7)

	r.EXPECT().OwnerOf(tokenId).Return(acc).Times(1)

	var reply token.OwnerReply
	err := tok.Owner(&token.TokenArguments{TokenId: tokenId}, &reply)
	assert.Nil(t, err, "wrong Owner")
	assert.Equal(t, tokenId, reply.TokenId, "wrong token id")
	assert.Equal(t, acc, reply.Owner, "wrong owner")
}

func TestTokenOwnerMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	r.EXPECT().OwnerOf(tokenrecord.TokenId(9)).Return(nil).Times(1)

	var reply token.OwnerReply
	err := tok.Owner(&token.TokenArguments{TokenId: tokenrecord.TokenId(9)}, &reply)
	assert.Equal(t, fault.TokenDoesNotExist, err, "wrong error")
}

func TestTokenMetadata(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	tokenId := tokenrecord.TokenId(3)
	r.EXPECT().MetadataOf(tokenId).Return("descriptor", nil).Times(1)

	var reply token.MetadataReply
	err := tok.Metadata(&token.TokenArguments{TokenId: tokenId}, &reply)
	assert.Nil(t, err, "wrong Metadata")
	assert.Equal(t, "descriptor", reply.Metadata, "wrong metadata")
}

func TestTokenApproved(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	delegate := testAccount(fixtures.ReceiverPublicKey)
	tokenId := tokenrecord.TokenId(3)
	r.EXPECT().GetApproved(tokenId).Return(delegate, nil).Times(1)

	var reply token.ApprovedReply
	err := tok.Approved(&token.TokenArguments{TokenId: tokenId}, &reply)
	assert.Nil(t, err, "wrong Approved")
	assert.Equal(t, delegate, reply.Delegate, "wrong delegate")
}

func TestTokenMint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	acc := testAccount(fixtures.OwnerPublicKey)

	arg := token.MintArguments{
		Owner:    acc,
		Metadata: "new item",
	}

	r.EXPECT().Mint(acc, "new item").Return(tokenrecord.TokenId(1), nil).Times(1)

	var reply token.MintReply
	err := tok.Mint(&arg, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, tokenrecord.TokenId(1), reply.TokenId, "wrong token id")
}

func TestTokenMintWhenStopped(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	arg := token.MintArguments{
		Owner: testAccount(fixtures.OwnerPublicKey),
	}

	var reply token.MintReply
	err := tok.Mint(&arg, &reply)
	assert.Equal(t, fault.NotAvailableDuringShutdown, err, "wrong error")
}

func TestTokenTransfer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	from := testAccount(fixtures.OwnerPublicKey)
	to := testAccount(fixtures.ReceiverPublicKey)
	tokenId := tokenrecord.TokenId(5)

	arg := token.TransferArguments{
		Caller:  from,
		From:    from,
		To:      to,
		TokenId: tokenId,
	}

	r.EXPECT().Transfer(from, from, to, tokenId).Return(nil).Times(1)

	var reply token.TransferReply
	err := tok.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong Transfer")
	assert.Equal(t, to, reply.Owner, "wrong new owner")
}

func TestTokenBurn(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	acc := testAccount(fixtures.OwnerPublicKey)
	tokenId := tokenrecord.TokenId(5)

	r.EXPECT().Burn(acc, tokenId).Return(nil).Times(1)
	r.EXPECT().TotalSupply().Return(uint64(4)).Times(1)

	var reply token.BurnReply
	err := tok.Burn(&token.BurnArguments{Caller: acc, TokenId: tokenId}, &reply)
	assert.Nil(t, err, "wrong Burn")
	assert.Equal(t, uint64(4), reply.TotalSupply, "wrong supply")
}

func TestTokenApprove(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(network.Testing)
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := mocks.NewMockRegistry(ctl)

	tok := token.New(logger.New(fixtures.LogCategory), mode.Is, r)

	acc := testAccount(fixtures.OwnerPublicKey)
	delegate := testAccount(fixtures.ReceiverPublicKey)
	tokenId := tokenrecord.TokenId(5)

	r.EXPECT().Approve(acc, delegate, tokenId).Return(nil).Times(1)

	var reply token.ApproveReply
	err := tok.Approve(&token.ApproveArguments{Caller: acc, Delegate: delegate, TokenId: tokenId}, &reply)
	assert.Nil(t, err, "wrong Approve")
	assert.Equal(t, delegate, reply.Delegate, "wrong delegate")
}
