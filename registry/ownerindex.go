// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// owner ⧺ index, the key form of a per owner enumeration slot
func ownerIndexKey(owner *account.Account, index uint64) []byte {
	indexBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(indexBytes, index)
	return append(owner.Bytes(), indexBytes...)
}

// owner ⧺ token id, the key form of the inverse record
func ownerTokenKey(owner *account.Account, tokenId tokenrecord.TokenId) []byte {
	return append(owner.Bytes(), tokenId.Bytes()...)
}

// TokenOfOwnerByIndex - the token at a position of an owner's enumeration
//
// positions run from zero to BalanceOf(owner)-1 and are only stable
// until the owner next loses a token
func TokenOfOwnerByIndex(owner *account.Account, index uint64) (tokenrecord.TokenId, error) {
	if owner.IsZero() {
		return 0, fault.InvalidAccount
	}

	packed := storage.Pool.OwnerList.Get(ownerIndexKey(owner, index))
	if nil == packed {
		return 0, fault.TokenDoesNotExist
	}
	return tokenrecord.TokenIdFromBytes(packed)
}

// add a token to the end of an owner's enumeration, must hold the lock
//
// the ownership store must already count the token, so the slot is
// the updated balance less one
func appendOwnerIndex(trx storage.Transaction, owner *account.Account, tokenId tokenrecord.TokenId) {
	balance, ok := trx.GetN(storage.Pool.OwnerCount, owner.Bytes())
	if !ok || 0 == balance {
		logger.Criticalf("registry.appendOwnerIndex: owner: %s  token: %s", owner, tokenId)
		logger.Panic("registry.appendOwnerIndex: OwnerCount database corrupt")
	}
	index := balance - 1
	indexBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(indexBytes, index)

	trx.Put(storage.Pool.OwnerList, ownerIndexKey(owner, index), tokenId.Bytes())
	trx.Put(storage.Pool.OwnerTokenIndex, ownerTokenKey(owner, tokenId), indexBytes)
}

// drop a token from an owner's enumeration, must hold the lock
//
// the ownership store must still count the token: the final slot is
// the current balance less one, and its entry moves into the vacated
// slot to keep the range dense
func removeOwnerIndex(trx storage.Transaction, owner *account.Account, tokenId tokenrecord.TokenId) {
	dKey := ownerTokenKey(owner, tokenId)
	indexBytes := trx.Get(storage.Pool.OwnerTokenIndex, dKey)
	if nil == indexBytes {
		logger.Criticalf("registry.removeOwnerIndex: owner: %s  token: %s", owner, tokenId)
		logger.Panic("registry.removeOwnerIndex: OwnerTokenIndex database corrupt")
	}

	balance, ok := trx.GetN(storage.Pool.OwnerCount, owner.Bytes())
	if !ok || 0 == balance {
		logger.Criticalf("registry.removeOwnerIndex: owner: %s  token: %s", owner, tokenId)
		logger.Panic("registry.removeOwnerIndex: OwnerCount database corrupt")
	}
	lastIndex := balance - 1
	lastBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(lastBytes, lastIndex)

	oKey := append(owner.Bytes(), indexBytes...)
	lastKey := append(owner.Bytes(), lastBytes...)

	if !bytes.Equal(indexBytes, lastBytes) {
		lastToken := trx.Get(storage.Pool.OwnerList, lastKey)
		if nil == lastToken {
			logger.Criticalf("registry.removeOwnerIndex: owner: %s  missing slot: %d", owner, lastIndex)
			logger.Panic("registry.removeOwnerIndex: OwnerList database corrupt")
		}
		trx.Put(storage.Pool.OwnerList, oKey, lastToken)
		trx.Put(storage.Pool.OwnerTokenIndex, append(owner.Bytes(), lastToken...), indexBytes)
	}

	trx.Delete(storage.Pool.OwnerList, lastKey)
	trx.Delete(storage.Pool.OwnerTokenIndex, dKey)
}
