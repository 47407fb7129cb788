// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

// capability codes advertised to clients
//
// the values are the conventional four byte registry interface
// identifiers so that existing client libraries recognise them
const (
	CapabilityRegistry    uint32 = 0x80ac58cd // ownership, transfer, approval
	CapabilityMetadata    uint32 = 0x5b5e139f // per token descriptor
	CapabilityEnumeration uint32 = 0x780e9d63 // global and per owner listing
)

// Capabilities - all advertised capability codes
func Capabilities() []uint32 {
	return []uint32{
		CapabilityRegistry,
		CapabilityMetadata,
		CapabilityEnumeration,
	}
}

// Supports - check a capability code
func Supports(code uint32) bool {
	switch code {
	case CapabilityRegistry, CapabilityMetadata, CapabilityEnumeration:
		return true
	default:
		return false
	}
}
