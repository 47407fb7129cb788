// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/mode"
	"github.com/bitmark-inc/tokend/registry"
	"github.com/bitmark-inc/tokend/rpc/ratelimit"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Registry     registry.Registry
}

const (
	MaximumTokensCount = 100
	rateLimitOwner     = 200
	rateBurstOwner     = 100
)

func New(log *logger.L, isNormalMode func(mode.Mode) bool, rg registry.Registry) *Owner {
	return &Owner{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		IsNormalMode: isNormalMode,
		Registry:     rg,
	}
}

// Owner tokens
// ------------

// TokensArguments - arguments for RPC
type TokensArguments struct {
	Owner *account.Account `json:"owner"`        // base58
	Start uint64           `json:"start,string"` // first record number
	Count int              `json:"count"`        // number of records
}

// TokensReply - result of owner RPC
type TokensReply struct {
	Next   uint64            `json:"next,string"` // start value for the next call
	Tokens []registry.Record `json:"tokens"`      // list of owned tokens
}

// Tokens - list tokens belonging to an account
func (owner *Owner) Tokens(arguments *TokensArguments, reply *TokensReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumTokensCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Tokens: %+v", arguments)

	records, err := owner.Registry.ListTokensFor(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("tokens: %+v", records)

	reply.Tokens = records

	// if no records were found then just return Next as zero
	// otherwise the next possible number
	if 0 == len(records) {
		reply.Next = 0
	} else {
		reply.Next = records[len(records)-1].N + 1
	}
	return nil
}

// Owner balance
// -------------

// BalanceArguments - arguments for RPC
type BalanceArguments struct {
	Owner *account.Account `json:"owner"` // base58
}

// BalanceReply - current holdings of an account
type BalanceReply struct {
	Balance uint64 `json:"balance,string"`
}

// Balance - number of tokens currently held by an account
func (owner *Owner) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	owner.Log.Infof("Owner.Balance: %+v", arguments)

	balance, err := owner.Registry.BalanceOf(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Balance = balance
	return nil
}

// Operator approvals
// ------------------

// SetOperatorArguments - grant or revoke a blanket approval
//
// the owner account is supplied by the authenticated transport
type SetOperatorArguments struct {
	Owner    *account.Account `json:"owner"`
	Operator *account.Account `json:"operator"`
	Approved bool             `json:"approved"`
}

// SetOperatorReply - the approval now in force
type SetOperatorReply struct {
	Operator *account.Account `json:"operator"`
	Approved bool             `json:"approved"`
}

// SetOperator - grant or revoke an operator for all of the owner's tokens
func (owner *Owner) SetOperator(arguments *SetOperatorArguments, reply *SetOperatorReply) error {

	if err := ratelimit.Limit(owner.Limiter); nil != err {
		return err
	}

	if !owner.IsNormalMode(mode.Normal) {
		return fault.NotAvailableDuringShutdown
	}

	owner.Log.Infof("Owner.SetOperator: %+v", arguments)

	err := owner.Registry.SetOperatorApproval(arguments.Owner, arguments.Operator, arguments.Approved)
	if nil != err {
		return err
	}

	reply.Operator = arguments.Operator
	reply.Approved = arguments.Approved
	return nil
}
