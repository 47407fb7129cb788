// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"testing"

	"github.com/bitmark-inc/tokend/event"
	"github.com/bitmark-inc/tokend/tokenrecord"
)

// queued items are delivered in order
func TestSendReceive(t *testing.T) {

	bus := event.NewBus()

	for i := 1; i <= 5; i += 1 {
		bus.Send(event.Transfer{TokenId: tokenrecord.TokenId(i)})
	}

	for i := 1; i <= 5; i += 1 {
		item := <-bus.Chan()
		transfer, ok := item.(event.Transfer)
		if !ok {
			t.Fatalf("unexpected item type: %T", item)
		}
		if tokenrecord.TokenId(i) != transfer.TokenId {
			t.Errorf("got token: %d  expected: %d", transfer.TokenId, i)
		}
	}
}

// a full queue must not block the sender
func TestSendNeverBlocks(t *testing.T) {

	bus := event.NewBus()

	// no reader: push well past the buffer size
	for i := 0; i < 5000; i += 1 {
		bus.Send(event.Transfer{TokenId: tokenrecord.TokenId(i)})
	}

	// the oldest entries were dropped, the newest survive
	item := <-bus.Chan()
	transfer := item.(event.Transfer)
	if transfer.TokenId < 4000 {
		t.Errorf("expected a recent entry, got token: %d", transfer.TokenId)
	}
}
