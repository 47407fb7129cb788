// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/event"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// owner ⧺ operator, the key form of a blanket approval
func operatorKey(owner, operator *account.Account) []byte {
	return append(owner.Bytes(), operator.Bytes()...)
}

// Approve - set or clear the single delegate of a token
//
// only the owner or one of its operators may do this; a zero delegate
// clears the approval; the delegate cannot be the owner itself
func Approve(caller, delegate *account.Account, tokenId tokenrecord.TokenId) error {
	if caller.IsZero() {
		return fault.InvalidAccount
	}

	toLock.Lock()
	defer toLock.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	owner := OwnerOf(trx, tokenId)
	if nil == owner {
		trx.Abort()
		return fault.TokenDoesNotExist
	}

	if sameAccount(delegate, owner) {
		trx.Abort()
		return fault.InvalidApprovalTarget
	}

	if !sameAccount(caller, owner) && !trx.Has(storage.Pool.Operators, operatorKey(owner, caller)) {
		trx.Abort()
		return fault.NotOperatorOrOwner
	}

	if delegate.IsZero() {
		trx.Delete(storage.Pool.Approvals, tokenId.Bytes())
	} else {
		trx.Put(storage.Pool.Approvals, tokenId.Bytes(), delegate.Bytes())
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("approve: token: %s  delegate: %s", tokenId, delegate)
	announce(event.Approval{
		Owner:    owner,
		Delegate: delegate,
		TokenId:  tokenId,
	})

	return nil
}

// SetOperatorApproval - grant or revoke a blanket approval
//
// an operator may act on every token the caller owns, now and later;
// the flag is per owner/operator pair and survives transfers
func SetOperatorApproval(caller, operator *account.Account, approved bool) error {
	if caller.IsZero() {
		return fault.InvalidAccount
	}
	if operator.IsZero() || sameAccount(operator, caller) {
		return fault.InvalidApprovalTarget
	}

	toLock.Lock()
	defer toLock.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	aKey := operatorKey(caller, operator)
	if approved {
		trx.Put(storage.Pool.Operators, aKey, []byte{1})
	} else {
		trx.Delete(storage.Pool.Operators, aKey)
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("operator: owner: %s  operator: %s  approved: %t", caller, operator, approved)
	announce(event.Operator{
		Owner:    caller,
		Operator: operator,
		Approved: approved,
	})

	return nil
}

// GetApproved - current delegate of a token, nil when none is set
func GetApproved(tokenId tokenrecord.TokenId) (*account.Account, error) {
	if !storage.Pool.Owners.Has(tokenId.Bytes()) {
		return nil, fault.TokenDoesNotExist
	}

	packed := storage.Pool.Approvals.Get(tokenId.Bytes())
	if nil == packed {
		return nil, nil
	}

	delegate, err := account.AccountFromBytes(packed)
	logger.PanicIfError("registry.GetApproved", err)
	return delegate, nil
}

// IsOperator - check a blanket approval
func IsOperator(owner, operator *account.Account) bool {
	if owner.IsZero() || operator.IsZero() {
		return false
	}
	return storage.Pool.Operators.Has(operatorKey(owner, operator))
}

// IsApprovedOrOwner - check if an account may act on a token
//
// true for the owner, its delegate on this token, or any of the
// owner's operators
func IsApprovedOrOwner(caller *account.Account, tokenId tokenrecord.TokenId) (bool, error) {
	if caller.IsZero() {
		return false, fault.InvalidAccount
	}

	owner := OwnerOf(nil, tokenId)
	if nil == owner {
		return false, fault.TokenDoesNotExist
	}

	return isAuthorised(nil, owner, caller, tokenId), nil
}

// authorisation check shared by transfer and burn
//
// a nil trx reads the committed state
func isAuthorised(trx storage.Transaction, owner, caller *account.Account, tokenId tokenrecord.TokenId) bool {
	if sameAccount(caller, owner) {
		return true
	}

	var packed []byte
	if nil == trx {
		packed = storage.Pool.Approvals.Get(tokenId.Bytes())
	} else {
		packed = trx.Get(storage.Pool.Approvals, tokenId.Bytes())
	}
	if nil != packed {
		delegate, err := account.AccountFromBytes(packed)
		logger.PanicIfError("registry.isAuthorised", err)
		if sameAccount(caller, delegate) {
			return true
		}
	}

	aKey := operatorKey(owner, caller)
	if nil == trx {
		return storage.Pool.Operators.Has(aKey)
	}
	return trx.Has(storage.Pool.Operators, aKey)
}

// drop the delegate of a token, must hold the lock
//
// every ownership change resets the single token approval
func clearApproval(trx storage.Transaction, tokenId tokenrecord.TokenId) {
	trx.Delete(storage.Pool.Approvals, tokenId.Bytes())
}
