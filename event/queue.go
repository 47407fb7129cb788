// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event

import (
	"github.com/bitmark-inc/tokend/account"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Transfer - ownership change: mint has a nil From, burn a nil To
type Transfer struct {
	From    *account.Account
	To      *account.Account
	TokenId tokenrecord.TokenId
}

// Approval - single token delegate change: nil Delegate clears
type Approval struct {
	Owner    *account.Account
	Delegate *account.Account
	TokenId  tokenrecord.TokenId
}

// Operator - blanket approval change
type Operator struct {
	Owner    *account.Account
	Operator *account.Account
	Approved bool
}

// Bus - an owned notification queue
type Bus struct {
	queue chan interface{}
}

// NewBus - create a queue with the default buffer
func NewBus() *Bus {
	return &Bus{
		queue: make(chan interface{}, defaultQueueSize),
	}
}

// Send - queue one notification, dropping the oldest if full
func (bus *Bus) Send(item interface{}) {
	for {
		select {
		case bus.queue <- item:
			return
		default:
			// drop the oldest entry to make room
			select {
			case <-bus.queue:
			default:
			}
		}
	}
}

// Chan - channel to read from
func (bus *Bus) Chan() <-chan interface{} {
	return bus.queue
}
