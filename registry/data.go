// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tokend/counter"
	"github.com/bitmark-inc/tokend/event"
	"github.com/bitmark-inc/tokend/fault"
	"github.com/bitmark-inc/tokend/storage"
)

// to ensure synchronised ledger updates
var toLock sync.Mutex

// from storage/setup.go:
//
// Ownership:
//   Owners           token id → owner
//   OwnerCount       owner → balance
//   OwnerList        owner ⧺ index → token id
//   OwnerTokenIndex  owner ⧺ token id → index
//
// Enumeration:
//   TokenList        index → token id
//   TokenIndex       token id → index
//
// Authorisation:
//   Approvals        token id → delegate
//   Operators        owner ⧺ operator → flag

// persistent counter records
var (
	mintedCounterKey = []byte("minted")
	burnedCounterKey = []byte("burned")
)

// globals for background processes
type registryData struct {
	sync.RWMutex // to allow locking

	log *logger.L  // logger
	bus *event.Bus // announce completed operations

	// lifetime totals, mirrored in the counters pool on every commit
	minted counter.Counter
	burned counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData registryData

// Initialise - set up the ledger and reload the lifetime counters
//
// storage must already be initialised
func Initialise(bus *event.Bus) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	if nil == storage.Pool.Counters {
		return fault.DatabaseIsNotSet
	}

	globalData.bus = bus

	minted, _ := storage.Pool.Counters.GetN(mintedCounterKey)
	burned, _ := storage.Pool.Counters.GetN(burnedCounterKey)
	globalData.minted = counter.Counter(minted)
	globalData.burned = counter.Counter(burned)

	globalData.log.Infof("minted: %d  burned: %d", minted, burned)

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - shut down the ledger
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.bus = nil
	globalData.initialised = false

	return nil
}

// announce an event unless running without a bus
func announce(item interface{}) {
	if nil != globalData.bus {
		globalData.bus.Send(item)
	}
}
