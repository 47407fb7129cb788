// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/registry"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// a fresh mint must appear in all four ledger views
func TestMint(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "first token")

	if tokenrecord.TokenId(1) != tokenId {
		t.Fatalf("token id: %d  expected: %d", tokenId, 1)
	}

	owner := registry.OwnerOf(nil, tokenId)
	if !sameKey(owner, alice) {
		t.Errorf("owner: %v  expected: %v", owner, alice)
	}

	balance, err := registry.BalanceOf(alice)
	if nil != err {
		t.Fatalf("balance error: %s", err)
	}
	if 1 != balance {
		t.Errorf("balance: %d  expected: %d", balance, 1)
	}

	checkSupply(t, 1)

	atIndex, err := registry.TokenByIndex(0)
	if nil != err {
		t.Fatalf("token by index error: %s", err)
	}
	if tokenId != atIndex {
		t.Errorf("token at 0: %d  expected: %d", atIndex, tokenId)
	}

	atOwnerIndex, err := registry.TokenOfOwnerByIndex(alice, 0)
	if nil != err {
		t.Fatalf("token of owner by index error: %s", err)
	}
	if tokenId != atOwnerIndex {
		t.Errorf("owner token at 0: %d  expected: %d", atOwnerIndex, tokenId)
	}

	metadata, err := registry.MetadataOf(tokenId)
	if nil != err {
		t.Fatalf("metadata error: %s", err)
	}
	if "first token" != metadata {
		t.Errorf("metadata: %q  expected: %q", metadata, "first token")
	}
}

// the null account can never receive a token
func TestMintToNullAccount(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := registry.Mint(nil, "")
	if fault.InvalidAccount != err {
		t.Fatalf("mint error: %v  expected: %v", err, fault.InvalidAccount)
	}

	_, err = registry.Mint(&account.Account{}, "")
	if fault.InvalidAccount != err {
		t.Fatalf("mint error: %v  expected: %v", err, fault.InvalidAccount)
	}

	checkSupply(t, 0)
}

// identifiers keep increasing even when earlier tokens are retired
func TestMintAfterBurnNeverReusesIds(t *testing.T) {
	setup(t)
	defer teardown(t)

	first := mustMint(t, alice, "")
	if err := registry.Burn(alice, first); nil != err {
		t.Fatalf("burn error: %s", err)
	}

	second := mustMint(t, alice, "")
	if tokenrecord.TokenId(2) != second {
		t.Fatalf("token id: %d  expected: %d", second, 2)
	}

	checkSupply(t, 1)
	if minted := registry.Minted(); 2 != minted {
		t.Errorf("minted: %d  expected: %d", minted, 2)
	}
	if burned := registry.Burned(); 1 != burned {
		t.Errorf("burned: %d  expected: %d", burned, 1)
	}
}

// minting without metadata leaves an empty descriptor
func TestMintWithoutMetadata(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "")

	metadata, err := registry.MetadataOf(tokenId)
	if nil != err {
		t.Fatalf("metadata error: %s", err)
	}
	if "" != metadata {
		t.Errorf("metadata: %q  expected empty", metadata)
	}
}
