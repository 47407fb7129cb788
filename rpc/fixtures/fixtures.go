// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test helpers for the RPC services
package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic test account keys
var (
	OwnerPublicKey    []byte
	ReceiverPublicKey []byte
	OperatorPublicKey []byte
)

func init() {
	OwnerPublicKey = fillKey(0x11)
	ReceiverPublicKey = fillKey(0x22)
	OperatorPublicKey = fillKey(0x33)
}

func fillKey(b byte) []byte {
	key := make([]byte, ed25519.PublicKeySize)
	for i := range key {
		key[i] = b
	}
	return key
}

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// self signed certificate pair shared by the TLS tests
var (
	certificatePEM []byte
	privateKeyPEM  []byte
)

func ensureCertPair() {
	if nil != certificatePEM {
		return
	}
	validUntil := time.Now().Add(time.Hour)
	cert, key, err := certgen.NewTLSCertPair("tokend testing", validUntil, false, nil)
	if nil != err {
		panic(fmt.Sprintf("cannot generate test certificate: %s", err))
	}
	certificatePEM = cert
	privateKeyPEM = key
}

// Certificate - PEM form of the shared test certificate
func Certificate() string {
	ensureCertPair()
	return string(certificatePEM)
}

// Key - PEM form of the matching private key
func Key() string {
	ensureCertPair()
	return string(privateKeyPEM)
}
