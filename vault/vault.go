// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vault - the account holding sale proceeds
//
// the vault public key is a digest of a fixed seed, so no private
// key for it is known and it can never sign; value leaves the vault
// only through claims and owner withdrawal
package vault

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/round"
	"github.com/bitmark-inc/slotd/storage"
)

const seed = "VAULT-SEED"

// Transferer - moves value between accounts inside a transaction
type Transferer interface {
	Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error
}

// Identity - the vault account for test or live networks
func Identity(test bool) *account.Account {
	publicKey := sha3.Sum256([]byte(seed))
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      test,
			PublicKey: publicKey[:],
		},
	}
}

// Withdraw - pay amount from the vault to the owner
//
// no check is made against value owed to buyers
func Withdraw(trx storage.Transaction, t Transferer, g *round.GlobalConfig, caller *account.Account, amount uint64) error {
	if !g.IsOwner(caller) {
		return fault.NotAllowedOwner
	}
	if 0 == amount {
		return fault.InvalidAmount
	}
	return t.Transfer(trx, g.Vault, g.Owner, amount)
}
