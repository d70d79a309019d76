// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - value held by each account
//
// balances are big endian uint64 records in the balances pool and
// change only inside a storage transaction
package balance

import (
	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/storage"
)

// Ledger - value transfer backed by the balances pool
type Ledger struct{}

// New - create a balance ledger
func New() *Ledger {
	return &Ledger{}
}

// Get - the balance of an account, zero if it never held value
func Get(r storage.Reader, owner *account.Account) uint64 {
	value, _ := r.GetN(storage.Pool.Balances, owner.Bytes())
	return value
}

// LockRequest - exclusive lock on the balance of an account
func LockRequest(owner *account.Account) storage.LockRequest {
	return storage.Pool.Balances.Exclusive(owner.Bytes())
}

// Transfer - move amount from one account to another
//
// a zero amount is a successful no-op
func (l *Ledger) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error {
	if 0 == amount {
		return nil
	}

	available := Get(trx, from)
	if available < amount {
		return fault.InsufficientFunds
	}

	if from.Equal(to) {
		return nil
	}

	received := Get(trx, to) + amount
	if received < amount {
		return fault.ValueOverflow
	}

	trx.PutN(storage.Pool.Balances, from.Bytes(), available-amount)
	trx.PutN(storage.Pool.Balances, to.Bytes(), received)
	return nil
}

// Deposit - credit an account with new value
func (l *Ledger) Deposit(trx storage.Transaction, to *account.Account, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}
	received := Get(trx, to) + amount
	if received < amount {
		return fault.ValueOverflow
	}
	trx.PutN(storage.Pool.Balances, to.Bytes(), received)
	return nil
}
