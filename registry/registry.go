// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// Registry - interface for the token ledger
type Registry interface {
	Mint(to *account.Account, metadata string) (tokenrecord.TokenId, error)
	Transfer(caller, from, to *account.Account, tokenId tokenrecord.TokenId) error
	SafeTransfer(caller, from, to *account.Account, tokenId tokenrecord.TokenId, data []byte, receiver Receiver) error
	Burn(caller *account.Account, tokenId tokenrecord.TokenId) error

	Approve(caller, delegate *account.Account, tokenId tokenrecord.TokenId) error
	SetOperatorApproval(caller, operator *account.Account, approved bool) error
	GetApproved(tokenId tokenrecord.TokenId) (*account.Account, error)
	IsOperator(owner, operator *account.Account) bool
	IsApprovedOrOwner(caller *account.Account, tokenId tokenrecord.TokenId) (bool, error)

	OwnerOf(tokenId tokenrecord.TokenId) *account.Account
	BalanceOf(owner *account.Account) (uint64, error)
	TotalSupply() uint64
	Minted() uint64
	Burned() uint64
	TokenByIndex(index uint64) (tokenrecord.TokenId, error)
	TokenOfOwnerByIndex(owner *account.Account, index uint64) (tokenrecord.TokenId, error)
	MetadataOf(tokenId tokenrecord.TokenId) (string, error)
	ListTokensFor(owner *account.Account, start uint64, count int) ([]Record, error)

	Supports(code uint32) bool
}

type ledger struct{}

func (ledger) Mint(to *account.Account, metadata string) (tokenrecord.TokenId, error) {
	return Mint(to, metadata)
}

func (ledger) Transfer(caller, from, to *account.Account, tokenId tokenrecord.TokenId) error {
	return Transfer(caller, from, to, tokenId)
}

func (ledger) SafeTransfer(caller, from, to *account.Account, tokenId tokenrecord.TokenId, data []byte, receiver Receiver) error {
	return SafeTransfer(caller, from, to, tokenId, data, receiver)
}

func (ledger) Burn(caller *account.Account, tokenId tokenrecord.TokenId) error {
	return Burn(caller, tokenId)
}

func (ledger) Approve(caller, delegate *account.Account, tokenId tokenrecord.TokenId) error {
	return Approve(caller, delegate, tokenId)
}

func (ledger) SetOperatorApproval(caller, operator *account.Account, approved bool) error {
	return SetOperatorApproval(caller, operator, approved)
}

func (ledger) GetApproved(tokenId tokenrecord.TokenId) (*account.Account, error) {
	return GetApproved(tokenId)
}

func (ledger) IsOperator(owner, operator *account.Account) bool {
	return IsOperator(owner, operator)
}

func (ledger) IsApprovedOrOwner(caller *account.Account, tokenId tokenrecord.TokenId) (bool, error) {
	return IsApprovedOrOwner(caller, tokenId)
}

func (ledger) OwnerOf(tokenId tokenrecord.TokenId) *account.Account {
	return OwnerOf(nil, tokenId)
}

func (ledger) BalanceOf(owner *account.Account) (uint64, error) {
	return BalanceOf(owner)
}

func (ledger) TotalSupply() uint64 { return TotalSupply() }
func (ledger) Minted() uint64      { return Minted() }
func (ledger) Burned() uint64      { return Burned() }

func (ledger) TokenByIndex(index uint64) (tokenrecord.TokenId, error) {
	return TokenByIndex(index)
}

func (ledger) TokenOfOwnerByIndex(owner *account.Account, index uint64) (tokenrecord.TokenId, error) {
	return TokenOfOwnerByIndex(owner, index)
}

func (ledger) MetadataOf(tokenId tokenrecord.TokenId) (string, error) {
	return MetadataOf(tokenId)
}

func (ledger) ListTokensFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	return ListTokensFor(owner, start, count)
}

func (ledger) Supports(code uint32) bool {
	return Supports(code)
}

var data ledger

// Get - return the ledger interface
func Get() Registry {
	return &data
}
