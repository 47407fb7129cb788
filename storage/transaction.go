// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// Transaction - all-or-nothing batch of pool updates
//
// reads performed through the transaction observe the staged but
// uncommitted writes of the same transaction
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

type transactionData struct {
	access []Access
}

func newTransaction(access []Access) Transaction {
	return &transactionData{
		access: access,
	}
}

// Begin - mark all underlying accesses as in use
func (t *transactionData) Begin() error {
	for _, a := range t.access {
		if err := a.Begin(); nil != err {
			return err
		}
	}
	return nil
}

// Commit - write out all staged batches, then release
func (t *transactionData) Commit() error {
	for _, a := range t.access {
		if err := a.Commit(); nil != err {
			return err
		}
	}
	t.Abort()
	return nil
}

// Abort - drop all staged writes and release
func (t *transactionData) Abort() {
	for _, a := range t.access {
		a.Abort()
	}
}

// InUse - check if a transaction is in progress
func (t *transactionData) InUse() bool {
	for _, a := range t.access {
		if a.InUse() {
			return true
		}
	}
	return false
}

func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.txPut(key, value)
}

func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.txPut(key, buffer)
}

func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	p.txDelete(key)
}

func (t *transactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.txGet(key)
}

func (t *transactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := p.txGet(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %s", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transactionData) Has(p *PoolHandle, key []byte) bool {
	return p.txHas(key)
}
