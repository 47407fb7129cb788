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

// Mint - create a new token for an account
//
// identifiers are allocated monotonically from one and never reused;
// the metadata string is stored verbatim and is immutable for the
// life of the token
func Mint(to *account.Account, metadata string) (tokenrecord.TokenId, error) {
	if to.IsZero() {
		return 0, fault.InvalidAccount
	}

	toLock.Lock()
	defer toLock.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	tokenId := tokenrecord.TokenId(globalData.minted.Uint64() + 1)

	if err := registerOwnership(trx, to, tokenId); nil != err {
		trx.Abort()
		return 0, err
	}

	appendGlobalIndex(trx, tokenId)
	appendOwnerIndex(trx, to, tokenId)

	if "" != metadata {
		trx.Put(storage.Pool.Metadata, tokenId.Bytes(), []byte(metadata))
	}

	trx.PutN(storage.Pool.Counters, mintedCounterKey, globalData.minted.Uint64()+1)

	if err := trx.Commit(); nil != err {
		trx.Abort()
		return 0, err
	}

	globalData.minted.Increment()

	globalData.log.Infof("mint: token: %s  owner: %s", tokenId, to)
	announce(event.Transfer{
		From:    nil,
		To:      to,
		TokenId: tokenId,
	})

	return tokenId, nil
}
