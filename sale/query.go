// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/balance"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/fee"
	"github.com/bitmark-inc/slotd/round"
	"github.com/bitmark-inc/slotd/settlement"
	"github.com/bitmark-inc/slotd/storage"
)

// SolvencyReport - vault holdings against value owed to buyers
type SolvencyReport struct {
	VaultBalance uint64 `json:"vaultBalance"`
	Outstanding  uint64 `json:"outstanding"`
	Accounts     uint64 `json:"accounts"`
	Solvent      bool   `json:"solvent"`
}

// Global - the protocol state
func (e *Engine) Global() (*round.GlobalConfig, error) {
	return round.ReadGlobal(storage.Committed)
}

// Round - the current round
func (e *Engine) Round() (*round.Ledger, error) {
	return round.ReadLedger(storage.Committed)
}

// Account - the settlement ledger of an account
func (e *Engine) Account(owner *account.Account) (*settlement.UserAccount, error) {
	return settlement.Read(storage.Committed, owner)
}

// Position - an account's ledger with the amounts a claim would pay
type Position struct {
	Account     *settlement.UserAccount `json:"account"`
	Payable     uint64                  `json:"payable"`
	Claimable   uint64                  `json:"claimable"`
	Outstanding uint64                  `json:"outstanding"`
}

// Position - read the protocol state and an account's ledger from one
// snapshot so the derived amounts never mix two different rounds
func (e *Engine) Position(owner *account.Account) (*Position, error) {
	if nil == owner || nil == owner.AccountInterface {
		return nil, fault.MissingParameters
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	trx.Lock(
		storage.Pool.Global.Shared(round.GlobalKey),
		storage.Pool.Users.Shared(owner.Bytes()),
	)
	defer trx.Abort()

	g, err := round.ReadGlobal(trx)
	if nil != err {
		return nil, err
	}
	u, err := settlement.Read(trx, owner)
	if nil != err {
		return nil, err
	}

	slots, _, err := u.Payable(g.RoundCounter)
	if nil != err {
		return nil, err
	}
	claimable, err := fee.Payout(slots, g.Price, g.Fee)
	if nil != err {
		return nil, err
	}
	outstanding, err := u.Outstanding(g.Price, g.Fee)
	if nil != err {
		return nil, err
	}

	return &Position{
		Account:     u,
		Payable:     slots,
		Claimable:   claimable,
		Outstanding: outstanding,
	}, nil
}

// Accounts - a page of settlement ledgers in key order
//
// pass the last owner of one page as after to fetch the next
func (e *Engine) Accounts(after *account.Account, count int) ([]settlement.Entry, error) {
	return settlement.List(after, count)
}

// Balance - value held by an account
func (e *Engine) Balance(owner *account.Account) uint64 {
	return balance.Get(storage.Committed, owner)
}

// Solvency - compare the vault balance with the payout owed for
// every unclaimed slot at the current price and fee
//
// owner withdrawals are not limited, so the vault can become insolvent
func (e *Engine) Solvency() (*SolvencyReport, error) {
	g, err := round.ReadGlobal(storage.Committed)
	if nil != err {
		return nil, err
	}

	report := &SolvencyReport{
		VaultBalance: balance.Get(storage.Committed, g.Vault),
	}

	err = settlement.Map(func(owner *account.Account, u *settlement.UserAccount) error {
		owed, err := u.Outstanding(g.Price, g.Fee)
		if nil != err {
			return err
		}
		total := report.Outstanding + owed
		if total < owed {
			return fault.ValueOverflow
		}
		report.Outstanding = total
		report.Accounts += 1
		return nil
	})
	if nil != err {
		return nil, err
	}

	report.Solvent = report.Outstanding <= report.VaultBalance
	if !report.Solvent {
		e.log.Warnf("solvency: vault: %d  outstanding: %d", report.VaultBalance, report.Outstanding)
	}
	return report, nil
}
