// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/registry"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// Token
// -----

// Token - type for the RPC
type Token struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Registry     registry.Registry
}

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, rg registry.Registry) *Token {
	return &Token{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitToken, rateBurstToken),
		IsNormalMode: isNormalMode,
		Registry:     rg,
	}
}

// Token queries
// -------------

// TokenArguments - select a single token
type TokenArguments struct {
	TokenId tokenrecord.TokenId `json:"tokenId"`
}

// OwnerReply - the current holder of a token
type OwnerReply struct {
	TokenId tokenrecord.TokenId `json:"tokenId"`
	Owner   *account.Account    `json:"owner"`
}

// Owner - find the current owner of a token
func (t *Token) Owner(arguments *TokenArguments, reply *OwnerReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Owner: %+v", arguments)

	owner := t.Registry.OwnerOf(arguments.TokenId)
	if nil == owner {
		return fault.TokenDoesNotExist
	}

	reply.TokenId = arguments.TokenId
	reply.Owner = owner
	return nil
}

// MetadataReply - the descriptor stored at mint time
type MetadataReply struct {
	TokenId  tokenrecord.TokenId `json:"tokenId"`
	Metadata string              `json:"metadata"`
}

// Metadata - fetch the descriptor of a token
func (t *Token) Metadata(arguments *TokenArguments, reply *MetadataReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Metadata: %+v", arguments)

	metadata, err := t.Registry.MetadataOf(arguments.TokenId)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Metadata = metadata
	return nil
}

// ApprovedReply - the current delegate of a token
type ApprovedReply struct {
	TokenId  tokenrecord.TokenId `json:"tokenId"`
	Delegate *account.Account    `json:"delegate,omitempty"`
}

// Approved - fetch the delegate of a token
func (t *Token) Approved(arguments *TokenArguments, reply *ApprovedReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	t.Log.Infof("Token.Approved: %+v", arguments)

	delegate, err := t.Registry.GetApproved(arguments.TokenId)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Delegate = delegate
	return nil
}

// Token mutations
// ---------------

// MintArguments - create a new token
//
// the caller account is supplied by the authenticated transport
type MintArguments struct {
	Owner    *account.Account `json:"owner"`
	Metadata string           `json:"metadata"`
}

// MintReply - the allocated identifier
type MintReply struct {
	TokenId tokenrecord.TokenId `json:"tokenId"`
}

// Mint - create a new token for an account
func (t *Token) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if !t.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringShutdown
	}

	t.Log.Infof("Token.Mint: %+v", arguments)

	tokenId, err := t.Registry.Mint(arguments.Owner, arguments.Metadata)
	if nil != err {
		return err
	}

	reply.TokenId = tokenId
	return nil
}

// TransferArguments - move a token between accounts
type TransferArguments struct {
	Caller  *account.Account    `json:"caller"`
	From    *account.Account    `json:"from"`
	To      *account.Account    `json:"to"`
	TokenId tokenrecord.TokenId `json:"tokenId"`
}

// TransferReply - the new holder after the move
type TransferReply struct {
	TokenId tokenrecord.TokenId `json:"tokenId"`
	Owner   *account.Account    `json:"owner"`
}

// Transfer - move a token between accounts
func (t *Token) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if !t.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringShutdown
	}

	t.Log.Infof("Token.Transfer: %+v", arguments)

	err := t.Registry.Transfer(arguments.Caller, arguments.From, arguments.To, arguments.TokenId)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Owner = arguments.To
	return nil
}

// BurnArguments - retire a token
type BurnArguments struct {
	Caller  *account.Account    `json:"caller"`
	TokenId tokenrecord.TokenId `json:"tokenId"`
}

// BurnReply - totals after the retirement
type BurnReply struct {
	TokenId     tokenrecord.TokenId `json:"tokenId"`
	TotalSupply uint64              `json:"totalSupply,string"`
}

// Burn - retire a token permanently
func (t *Token) Burn(arguments *BurnArguments, reply *BurnReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if !t.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringShutdown
	}

	t.Log.Infof("Token.Burn: %+v", arguments)

	err := t.Registry.Burn(arguments.Caller, arguments.TokenId)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.TotalSupply = t.Registry.TotalSupply()
	return nil
}

// ApproveArguments - set or clear the delegate of a token
type ApproveArguments struct {
	Caller   *account.Account    `json:"caller"`
	Delegate *account.Account    `json:"delegate"`
	TokenId  tokenrecord.TokenId `json:"tokenId"`
}

// ApproveReply - the delegate now in force
type ApproveReply struct {
	TokenId  tokenrecord.TokenId `json:"tokenId"`
	Delegate *account.Account    `json:"delegate,omitempty"`
}

// Approve - set or clear the single delegate of a token
func (t *Token) Approve(arguments *ApproveArguments, reply *ApproveReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if !t.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringShutdown
	}

	t.Log.Infof("Token.Approve: %+v", arguments)

	err := t.Registry.Approve(arguments.Caller, arguments.Delegate, arguments.TokenId)
	if nil != err {
		return err
	}

	reply.TokenId = arguments.TokenId
	reply.Delegate = arguments.Delegate
	return nil
}
