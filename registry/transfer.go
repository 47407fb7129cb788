// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/event"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// Receiver - acknowledgment callback for safe transfers
//
// a recipient that wants delivery confirmation implements this; the
// returned code must match ReceiptCode or the whole transfer is
// rolled back
type Receiver interface {
	OnTokenReceived(operator, from *account.Account, tokenId tokenrecord.TokenId, data []byte) [32]byte
}

// ReceiptCode - the well known acknowledgment value
var ReceiptCode = sha3.Sum256([]byte("OnTokenReceived(operator,from,tokenId,data)"))

// Transfer - move a token between accounts
//
// the caller must be the owner, the token's delegate or one of the
// owner's operators; the delegate approval is reset by the move
func Transfer(caller, from, to *account.Account, tokenId tokenrecord.TokenId) error {
	return transfer(caller, from, to, tokenId, nil, nil)
}

// SafeTransfer - move a token and require a delivery acknowledgment
//
// after the ownership views are staged the receiver callback is asked
// to acknowledge; anything but ReceiptCode aborts the staged
// transaction so the ledger is untouched
func SafeTransfer(caller, from, to *account.Account, tokenId tokenrecord.TokenId, data []byte, receiver Receiver) error {
	return transfer(caller, from, to, tokenId, data, receiver)
}

func transfer(caller, from, to *account.Account, tokenId tokenrecord.TokenId, data []byte, receiver Receiver) error {
	if caller.IsZero() || to.IsZero() {
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

	// the declared source must match the ledger
	if !sameAccount(from, owner) {
		trx.Abort()
		return fault.NotTransferable
	}

	if !isAuthorised(trx, owner, caller, tokenId) {
		trx.Abort()
		return fault.NotOperatorOrOwner
	}

	clearApproval(trx, tokenId)

	// old owner's slots first, while the balance still counts the token
	removeOwnerIndex(trx, owner, tokenId)
	transferOwnership(trx, owner, to, tokenId)
	appendOwnerIndex(trx, to, tokenId)

	if nil != receiver {
		code := receiver.OnTokenReceived(caller, owner, tokenId, data)
		if ReceiptCode != code {
			trx.Abort()
			return fault.RecipientRejected
		}
	}

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("transfer: token: %s  from: %s  to: %s", tokenId, owner, to)
	announce(event.Transfer{
		From:    owner,
		To:      to,
		TokenId: tokenId,
	})

	return nil
}
