// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Slot    = "slot"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Slot, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true for any chain using test network accounts
func IsTesting(name string) bool {
	return Testing == name || Local == name
}
