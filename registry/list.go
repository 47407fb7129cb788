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

// Record - one entry of an owner's token listing
type Record struct {
	N        uint64              `json:"n,string"`
	TokenId  tokenrecord.TokenId `json:"tokenId"`
	Metadata string              `json:"metadata,omitempty"`
}

// MetadataOf - the descriptor stored at mint time
//
// empty when the token was minted without one
func MetadataOf(tokenId tokenrecord.TokenId) (string, error) {
	if !storage.Pool.Owners.Has(tokenId.Bytes()) {
		return "", fault.TokenDoesNotExist
	}
	return string(storage.Pool.Metadata.Get(tokenId.Bytes())), nil
}

// ListTokensFor - fetch a page of an owner's enumeration
//
// starts at the given position and returns up to count records; a
// short or empty page means the listing is exhausted
func ListTokensFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	if owner.IsZero() {
		return nil, fault.InvalidAccount
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	ownerBytes := owner.Bytes()
	prefix := append(ownerBytes, startBytes...)

	cursor := storage.Pool.OwnerList.NewFetchCursor().Seek(prefix)

	// owner ⧺ index → token id
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			logger.Panicf("split cannot be <= 0: %d", split)
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		tokenId, err := tokenrecord.TokenIdFromBytes(item.Value)
		if nil != err {
			return nil, err
		}

		records = append(records, Record{
			N:        binary.BigEndian.Uint64(item.Key[split:]),
			TokenId:  tokenId,
			Metadata: string(storage.Pool.Metadata.Get(item.Value)),
		})
	}

	return records, nil
}
