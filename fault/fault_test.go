// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/tokend/fault"
)

// test that the error classes are distinguishable
func TestErrorClasses(t *testing.T) {

	items := []struct {
		err          error
		accessDenied bool
		exists       bool
		invalid      bool
		notFound     bool
		process      bool
	}{
		{fault.NotOperatorOrOwner, true, false, false, false, false},
		{fault.TokenAlreadyExists, false, true, false, false, false},
		{fault.InvalidAccount, false, false, true, false, false},
		{fault.InvalidApprovalTarget, false, false, true, false, false},
		{fault.TokenDoesNotExist, false, false, false, true, false},
		{fault.RecipientRejected, false, false, false, false, true},
	}

	for i, item := range items {
		if fault.IsErrAccessDenied(item.err) != item.accessDenied {
			t.Errorf("%d: access denied mismatch for: %v", i, item.err)
		}
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists mismatch for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid mismatch for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found mismatch for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process mismatch for: %v", i, item.err)
		}
	}
}

// ensure error messages are stable
func TestErrorMessages(t *testing.T) {
	if fault.TokenDoesNotExist.Error() != "token does not exist" {
		t.Errorf("unexpected message: %q", fault.TokenDoesNotExist.Error())
	}
	if fault.NotOperatorOrOwner.Error() != "not operator or owner" {
		t.Errorf("unexpected message: %q", fault.NotOperatorOrOwner.Error())
	}
}
