// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/registry"
	"github.com/bitmark-inc/tokend/storage"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// test files
const (
	databaseFileName = "test.leveldb"
	logDirectory     = "testing"
)

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(logDirectory)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", "testing"),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = registry.Initialise(nil)
	if nil != err {
		t.Fatalf("registry initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = registry.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// deterministic test accounts

func makeAccount(seed byte) *account.Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	for i := range publicKey {
		publicKey[i] = seed
	}
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: publicKey,
		},
	}
}

var (
	alice    = makeAccount(0x01)
	bob      = makeAccount(0x02)
	carol    = makeAccount(0x03)
	keeper   = makeAccount(0x04) // operator account
	stranger = makeAccount(0x05)
)

// compare accounts by their packed key form
func sameKey(a, b *account.Account) bool {
	if nil == a || nil == b {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// mint one token or fail the test
func mustMint(t *testing.T, to *account.Account, metadata string) tokenrecord.TokenId {
	tokenId, err := registry.Mint(to, metadata)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	return tokenId
}

// check the ledger totals all agree
func checkSupply(t *testing.T, expected uint64) {
	t.Helper()

	if supply := registry.TotalSupply(); expected != supply {
		t.Errorf("total supply: %d  expected: %d", supply, expected)
	}
	if minted, burned := registry.Minted(), registry.Burned(); expected != minted-burned {
		t.Errorf("minted: %d - burned: %d ≠ expected: %d", minted, burned, expected)
	}
}
