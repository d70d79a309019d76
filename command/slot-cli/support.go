// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/command/slot-cli/rpccalls"
	"github.com/bitmark-inc/slotd/fault"
)

// connect to slotd using the global options
func (m *metadata) client() (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.connect, m.fingerprint, m.key, m.verbose, m.e)
}

// decode an account on the selected network
// blank selects the account of the signing key, or nil if there is no key
func (m *metadata) account(s string) (*account.Account, error) {
	if "" == s {
		if nil == m.key {
			return nil, nil
		}
		return m.key.Account(), nil
	}

	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != m.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return a, nil
}

// an account that must be present
func (m *metadata) requiredAccount(s string) (*account.Account, error) {
	a, err := m.account(s)
	if nil != err {
		return nil, err
	}
	if nil == a {
		return nil, fmt.Errorf("owner account is required")
	}
	return a, nil
}
