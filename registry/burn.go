// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/event"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// Burn - retire a token permanently
//
// the caller must be the owner, the token's delegate or one of the
// owner's operators; the identifier is never reused and both
// enumerations close over the vacated slots
func Burn(caller *account.Account, tokenId tokenrecord.TokenId) error {
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

	if !isAuthorised(trx, owner, caller, tokenId) {
		trx.Abort()
		return fault.NotOperatorOrOwner
	}

	clearApproval(trx, tokenId)

	// enumeration slots first, while the balance still counts the token
	removeOwnerIndex(trx, owner, tokenId)
	removeGlobalIndex(trx, tokenId)
	clearOwnership(trx, owner, tokenId)

	trx.Delete(storage.Pool.Metadata, tokenId.Bytes())

	trx.PutN(storage.Pool.Counters, burnedCounterKey, globalData.burned.Uint64()+1)

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return err
	}

	globalData.burned.Increment()

	globalData.log.Infof("burn: token: %s  owner: %s", tokenId, owner)
	announce(event.Transfer{
		From:    owner,
		To:      nil,
		TokenId: tokenId,
	})

	return nil
}
