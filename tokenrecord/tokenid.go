// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokenrecord - token identifiers
//
// identifiers are allocated monotonically from one and are never
// reused, even after the token is retired
package tokenrecord

import (
	"encoding/binary"
	"strconv"

	"github.com/bitmark-inc/tokend/fault"
)

// TokenId - unique identifier of a token
type TokenId uint64

// KeyLength - bytes in the big endian key form
const KeyLength = 8

// Bytes - 8 byte big endian key form for storage pools
func (tokenId TokenId) Bytes() []byte {
	buffer := make([]byte, KeyLength)
	binary.BigEndian.PutUint64(buffer, uint64(tokenId))
	return buffer
}

// TokenIdFromBytes - decode an 8 byte big endian key
func TokenIdFromBytes(buffer []byte) (TokenId, error) {
	if KeyLength != len(buffer) {
		return 0, fault.TokenDoesNotExist
	}
	return TokenId(binary.BigEndian.Uint64(buffer)), nil
}

// String - decimal text form
func (tokenId TokenId) String() string {
	return strconv.FormatUint(uint64(tokenId), 10)
}

// MarshalText - convert a token id to its decimal JSON form
func (tokenId TokenId) MarshalText() ([]byte, error) {
	return []byte(tokenId.String()), nil
}

// UnmarshalText - convert decimal text into a token id
func (tokenId *TokenId) UnmarshalText(s []byte) error {
	value, err := strconv.ParseUint(string(s), 10, 64)
	if nil != err {
		return err
	}
	*tokenId = TokenId(value)
	return nil
}
