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

// set, read back and clear a single token delegate
func TestApprove(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "")

	if err := registry.Approve(alice, carol, tokenId); nil != err {
		t.Fatalf("approve error: %s", err)
	}

	delegate, err := registry.GetApproved(tokenId)
	if nil != err {
		t.Fatalf("get approved error: %s", err)
	}
	if !sameKey(delegate, carol) {
		t.Errorf("delegate: %v  expected: %v", delegate, carol)
	}

	// a zero delegate clears
	if err := registry.Approve(alice, nil, tokenId); nil != err {
		t.Fatalf("clear approve error: %s", err)
	}
	delegate, err = registry.GetApproved(tokenId)
	if nil != err {
		t.Fatalf("get approved error: %s", err)
	}
	if nil != delegate {
		t.Errorf("delegate: %v  expected none", delegate)
	}
}

// only the owner or an operator may set the delegate
func TestApproveUnauthorized(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "")

	err := registry.Approve(stranger, carol, tokenId)
	if fault.NotOperatorOrOwner != err {
		t.Fatalf("approve error: %v  expected: %v", err, fault.NotOperatorOrOwner)
	}
}

// the owner cannot be its own delegate
func TestApproveOwnerAsDelegate(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "")

	err := registry.Approve(alice, alice, tokenId)
	if fault.InvalidApprovalTarget != err {
		t.Fatalf("approve error: %v  expected: %v", err, fault.InvalidApprovalTarget)
	}
}

// no delegate on a token that was never minted
func TestApproveMissingToken(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := registry.Approve(alice, carol, tokenrecord.TokenId(9))
	if fault.TokenDoesNotExist != err {
		t.Fatalf("approve error: %v  expected: %v", err, fault.TokenDoesNotExist)
	}

	_, err = registry.GetApproved(tokenrecord.TokenId(9))
	if fault.TokenDoesNotExist != err {
		t.Fatalf("get approved error: %v  expected: %v", err, fault.TokenDoesNotExist)
	}
}

// an operator may manage delegates for the owner's tokens
func TestApproveByOperator(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "")

	if err := registry.SetOperatorApproval(alice, keeper, true); nil != err {
		t.Fatalf("set operator error: %s", err)
	}
	if err := registry.Approve(keeper, carol, tokenId); nil != err {
		t.Fatalf("approve error: %s", err)
	}

	delegate, err := registry.GetApproved(tokenId)
	if nil != err {
		t.Fatalf("get approved error: %s", err)
	}
	if !sameKey(delegate, carol) {
		t.Errorf("delegate: %v  expected: %v", delegate, carol)
	}
}

// blanket approvals can be granted and revoked
func TestOperatorApproval(t *testing.T) {
	setup(t)
	defer teardown(t)

	if registry.IsOperator(alice, keeper) {
		t.Fatal("unexpected operator before grant")
	}

	if err := registry.SetOperatorApproval(alice, keeper, true); nil != err {
		t.Fatalf("set operator error: %s", err)
	}
	if !registry.IsOperator(alice, keeper) {
		t.Error("operator not recorded")
	}

	// the grant is one way
	if registry.IsOperator(keeper, alice) {
		t.Error("reverse grant recorded")
	}

	if err := registry.SetOperatorApproval(alice, keeper, false); nil != err {
		t.Fatalf("revoke operator error: %s", err)
	}
	if registry.IsOperator(alice, keeper) {
		t.Error("operator survived revocation")
	}
}

// an account cannot be its own operator
func TestOperatorSelf(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := registry.SetOperatorApproval(alice, alice, true)
	if fault.InvalidApprovalTarget != err {
		t.Fatalf("set operator error: %v  expected: %v", err, fault.InvalidApprovalTarget)
	}

	err = registry.SetOperatorApproval(alice, nil, true)
	if fault.InvalidApprovalTarget != err {
		t.Fatalf("set operator error: %v  expected: %v", err, fault.InvalidApprovalTarget)
	}
}

// owner, delegate and operator may act; a stranger may not
func TestIsApprovedOrOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "")

	if err := registry.Approve(alice, carol, tokenId); nil != err {
		t.Fatalf("approve error: %s", err)
	}
	if err := registry.SetOperatorApproval(alice, keeper, true); nil != err {
		t.Fatalf("set operator error: %s", err)
	}

	testItems := []struct {
		name     string
		caller   *account.Account
		expected bool
	}{
		{"owner", alice, true},
		{"delegate", carol, true},
		{"operator", keeper, true},
		{"stranger", stranger, false},
	}

	for i, item := range testItems {
		ok, err := registry.IsApprovedOrOwner(item.caller, tokenId)
		if nil != err {
			t.Fatalf("%d: is approved error: %s", i, err)
		}
		if item.expected != ok {
			t.Errorf("%d: %s approved: %t  expected: %t", i, item.name, ok, item.expected)
		}
	}
}

// approvals on a burned token disappear with it
func TestApprovalClearedByBurn(t *testing.T) {
	setup(t)
	defer teardown(t)

	tokenId := mustMint(t, alice, "")

	if err := registry.Approve(alice, carol, tokenId); nil != err {
		t.Fatalf("approve error: %s", err)
	}
	if err := registry.Burn(alice, tokenId); nil != err {
		t.Fatalf("burn error: %s", err)
	}

	_, err := registry.GetApproved(tokenId)
	if fault.TokenDoesNotExist != err {
		t.Fatalf("get approved error: %v  expected: %v", err, fault.TokenDoesNotExist)
	}
}
