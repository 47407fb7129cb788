// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

const uint64ByteSize = 8

// TotalSupply - number of live tokens
func TotalSupply() uint64 {
	return globalData.minted.Uint64() - globalData.burned.Uint64()
}

// Minted - lifetime number of tokens ever created
func Minted() uint64 {
	return globalData.minted.Uint64()
}

// Burned - lifetime number of tokens retired
func Burned() uint64 {
	return globalData.burned.Uint64()
}

// TokenByIndex - the token at a position of the global enumeration
//
// positions run from zero to TotalSupply()-1 and are only stable
// until the next burn
func TokenByIndex(index uint64) (tokenrecord.TokenId, error) {
	indexKey := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(indexKey, index)

	packed := storage.Pool.TokenList.Get(indexKey)
	if nil == packed {
		return 0, fault.TokenDoesNotExist
	}
	return tokenrecord.TokenIdFromBytes(packed)
}

// add a token to the end of the global enumeration, must hold the lock
//
// the slot is the live supply before this token is counted
func appendGlobalIndex(trx storage.Transaction, tokenId tokenrecord.TokenId) {
	index := globalData.minted.Uint64() - globalData.burned.Uint64()
	indexKey := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(indexKey, index)

	trx.Put(storage.Pool.TokenList, indexKey, tokenId.Bytes())
	trx.Put(storage.Pool.TokenIndex, tokenId.Bytes(), indexKey)
}

// drop a token from the global enumeration, must hold the lock
//
// the final entry moves into the vacated slot so that the range stays
// dense; the displaced records are rewritten before the stale tail
// records are removed
func removeGlobalIndex(trx storage.Transaction, tokenId tokenrecord.TokenId) {
	tokenKey := tokenId.Bytes()

	indexKey := trx.Get(storage.Pool.TokenIndex, tokenKey)
	if nil == indexKey {
		logger.Criticalf("registry.removeGlobalIndex: token: %s", tokenId)
		logger.Panic("registry.removeGlobalIndex: TokenIndex database corrupt")
	}

	lastIndex := globalData.minted.Uint64() - globalData.burned.Uint64() - 1
	lastKey := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(lastKey, lastIndex)

	if !bytes.Equal(indexKey, lastKey) {
		lastToken := trx.Get(storage.Pool.TokenList, lastKey)
		if nil == lastToken {
			logger.Criticalf("registry.removeGlobalIndex: missing slot: %d", lastIndex)
			logger.Panic("registry.removeGlobalIndex: TokenList database corrupt")
		}
		trx.Put(storage.Pool.TokenList, indexKey, lastToken)
		trx.Put(storage.Pool.TokenIndex, lastToken, indexKey)
	}

	trx.Delete(storage.Pool.TokenList, lastKey)
	trx.Delete(storage.Pool.TokenIndex, tokenKey)
}
