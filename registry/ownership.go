// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// OwnerOf - find the current owner of a token
//
// returns nil if the token was never minted or has been retired; a
// nil trx reads the committed state
func OwnerOf(trx storage.Transaction, tokenId tokenrecord.TokenId) *account.Account {
	var packed []byte

	if nil == trx {
		packed = storage.Pool.Owners.Get(tokenId.Bytes())
	} else {
		packed = trx.Get(storage.Pool.Owners, tokenId.Bytes())
	}

	if nil == packed {
		return nil
	}

	owner, err := account.AccountFromBytes(packed)
	logger.PanicIfError("registry.OwnerOf", err)
	return owner
}

// BalanceOf - number of tokens currently held by an account
func BalanceOf(owner *account.Account) (uint64, error) {
	if owner.IsZero() {
		return 0, fault.InvalidAccount
	}
	balance, _ := storage.Pool.OwnerCount.GetN(owner.Bytes())
	return balance, nil
}

// compare two accounts by their packed key form
func sameAccount(a *account.Account, b *account.Account) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() && b.IsZero()
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// record a brand new ownership, must hold the lock
//
// sets the owner record and increments the balance; the caller appends
// the enumeration entries afterwards
func registerOwnership(trx storage.Transaction, owner *account.Account, tokenId tokenrecord.TokenId) error {
	tokenKey := tokenId.Bytes()

	if trx.Has(storage.Pool.Owners, tokenKey) {
		return fault.TokenAlreadyExists
	}

	trx.Put(storage.Pool.Owners, tokenKey, owner.Bytes())

	nKey := owner.Bytes()
	balance, _ := trx.GetN(storage.Pool.OwnerCount, nKey)
	trx.PutN(storage.Pool.OwnerCount, nKey, balance+1)

	return nil
}

// move a token between accounts, must hold the lock
//
// the per owner enumeration entries must be handled around this call:
// remove for the old owner before, append for the new owner after
func transferOwnership(trx storage.Transaction, from, to *account.Account, tokenId tokenrecord.TokenId) {
	fromKey := from.Bytes()
	fromBalance, ok := trx.GetN(storage.Pool.OwnerCount, fromKey)
	if !ok || 0 == fromBalance {
		logger.Criticalf("registry.transferOwnership: from: %s  token: %s", from, tokenId)
		logger.Panic("registry.transferOwnership: OwnerCount database corrupt")
	}
	if 1 == fromBalance {
		trx.Delete(storage.Pool.OwnerCount, fromKey)
	} else {
		trx.PutN(storage.Pool.OwnerCount, fromKey, fromBalance-1)
	}

	toKey := to.Bytes()
	toBalance, _ := trx.GetN(storage.Pool.OwnerCount, toKey)
	trx.PutN(storage.Pool.OwnerCount, toKey, toBalance+1)

	trx.Put(storage.Pool.Owners, tokenId.Bytes(), to.Bytes())
}

// erase an ownership on retirement, must hold the lock
func clearOwnership(trx storage.Transaction, owner *account.Account, tokenId tokenrecord.TokenId) {
	nKey := owner.Bytes()
	balance, ok := trx.GetN(storage.Pool.OwnerCount, nKey)
	if !ok || 0 == balance {
		logger.Criticalf("registry.clearOwnership: owner: %s  token: %s", owner, tokenId)
		logger.Panic("registry.clearOwnership: OwnerCount database corrupt")
	}
	if 1 == balance {
		trx.Delete(storage.Pool.OwnerCount, nKey)
	} else {
		trx.PutN(storage.Pool.OwnerCount, nKey, balance-1)
	}

	trx.Delete(storage.Pool.Owners, tokenId.Bytes())
}
