// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/round"
	"github.com/bitmark-inc/slotd/settlement"
)

// Sale - the operations offered to remote callers
type Sale interface {
	Initialise(caller *account.Account, sequence uint64, price uint64, feePerMille uint64) (*round.GlobalConfig, error)
	UpdateFee(caller *account.Account, sequence uint64, feePerMille uint64) (*round.GlobalConfig, error)
	CreateRound(caller *account.Account, sequence uint64, index uint64) (*round.Ledger, error)
	Buy(caller *account.Account, sequence uint64, roundIndex uint64, amount uint64) (*BuyResult, error)
	Claim(caller *account.Account, sequence uint64) (*ClaimResult, error)
	Withdraw(caller *account.Account, sequence uint64, amount uint64) (*WithdrawResult, error)
	Deposit(owner *account.Account, amount uint64) (uint64, error)

	Global() (*round.GlobalConfig, error)
	Round() (*round.Ledger, error)
	Account(owner *account.Account) (*settlement.UserAccount, error)
	Position(owner *account.Account) (*Position, error)
	Accounts(after *account.Account, count int) ([]settlement.Entry, error)
	Balance(owner *account.Account) uint64
	Solvency() (*SolvencyReport, error)
	Vault() *account.Account
}

// make sure the engine satisfies the interface
var _ Sale = (*Engine)(nil)
