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
	"github.com/bitmark-inc/slotd/storage"
	"github.com/bitmark-inc/slotd/vault"
)

// WithdrawResult - the outcome of a withdrawal
type WithdrawResult struct {
	Amount       uint64 `json:"amount"`
	VaultBalance uint64 `json:"vaultBalance"`
	OwnerBalance uint64 `json:"ownerBalance"`
}

func globalLock() storage.LockRequest {
	return storage.Pool.Global.Exclusive(round.GlobalKey)
}

func ledgerLock() storage.LockRequest {
	return storage.Pool.Rounds.Exclusive(round.LedgerKey)
}

// Initialise - set up the sale with the caller as owner
func (e *Engine) Initialise(caller *account.Account, sequence uint64, price uint64, feePerMille uint64) (*round.GlobalConfig, error) {
	if err := e.checkCaller(caller); nil != err {
		return nil, err
	}
	if 0 == price {
		return nil, fault.InvalidPrice
	}
	if feePerMille > fee.MaxSaleFee {
		return nil, fault.MaxFeeError
	}

	g := &round.GlobalConfig{
		Owner:        caller,
		Price:        price,
		Fee:          feePerMille,
		RoundCounter: 0,
		Vault:        e.vault,
	}

	err := e.run([]storage.LockRequest{globalLock(), sequenceLock(caller)}, func(trx storage.Transaction) error {
		if err := accept(trx, caller, sequence); nil != err {
			return err
		}
		if trx.Has(storage.Pool.Global, round.GlobalKey) {
			return fault.AlreadyInitialised
		}
		g.Store(trx)
		return nil
	})
	if nil != err {
		e.log.Debugf("initialise: caller: %s  error: %s", caller, err)
		return nil, err
	}

	e.log.Infof("initialise: owner: %s  price: %d  fee: %d‰  vault: %s", caller, price, feePerMille, e.vault)
	e.publish("initialise", g)
	return g, nil
}

// UpdateFee - change the fee rate
//
// any value is stored; rates that sales or claims cannot use make
// those operations fail until the fee is lowered again
func (e *Engine) UpdateFee(caller *account.Account, sequence uint64, feePerMille uint64) (*round.GlobalConfig, error) {
	if err := e.checkCaller(caller); nil != err {
		return nil, err
	}

	var g *round.GlobalConfig
	err := e.run([]storage.LockRequest{globalLock(), sequenceLock(caller)}, func(trx storage.Transaction) error {
		err := accept(trx, caller, sequence)
		if nil != err {
			return err
		}
		g, err = round.ReadGlobal(trx)
		if nil != err {
			return err
		}
		if !g.IsOwner(caller) {
			return fault.NotAllowedOwner
		}
		g.Fee = feePerMille
		g.Store(trx)
		return nil
	})
	if nil != err {
		e.log.Debugf("update fee: caller: %s  error: %s", caller, err)
		return nil, err
	}

	if feePerMille > fee.MaxSaleFee {
		e.log.Warnf("update fee: %d‰ is over the sale maximum: %d‰", feePerMille, fee.MaxSaleFee)
	} else {
		e.log.Infof("update fee: %d‰", feePerMille)
	}
	e.publish("fee", g)
	return g, nil
}

// CreateRound - start the round following the round counter
//
// replaces any current round even if it is not full
func (e *Engine) CreateRound(caller *account.Account, sequence uint64, index uint64) (*round.Ledger, error) {
	if err := e.checkCaller(caller); nil != err {
		return nil, err
	}

	var l *round.Ledger
	forced := false
	err := e.run([]storage.LockRequest{globalLock(), ledgerLock(), sequenceLock(caller)}, func(trx storage.Transaction) error {
		if err := accept(trx, caller, sequence); nil != err {
			return err
		}
		g, err := round.ReadGlobal(trx)
		if nil != err {
			return err
		}
		if !g.IsOwner(caller) {
			return fault.NotAllowedOwner
		}
		l, err = g.Create(index)
		if nil != err {
			return err
		}
		forced = trx.Has(storage.Pool.Rounds, round.LedgerKey)
		g.Store(trx)
		l.Store(trx)
		return nil
	})
	if nil != err {
		e.log.Debugf("create round: %d  caller: %s  error: %s", index, caller, err)
		return nil, err
	}

	if forced {
		e.log.Warnf("create round: %d  capacity: %d  replaced an open round", l.Index, l.Capacity)
	} else {
		e.log.Infof("create round: %d  capacity: %d", l.Index, l.Capacity)
	}
	e.publish("round", l)
	return l, nil
}

// Withdraw - move value from the vault to the owner
//
// amounts still owed to buyers are not reserved, see Solvency
func (e *Engine) Withdraw(caller *account.Account, sequence uint64, amount uint64) (*WithdrawResult, error) {
	if err := e.checkCaller(caller); nil != err {
		return nil, err
	}

	// the vault never changes once set so it can be read before locking
	g, err := round.ReadGlobal(storage.Committed)
	if nil != err {
		return nil, err
	}

	locks := []storage.LockRequest{
		globalLock(),
		balance.LockRequest(g.Vault),
		balance.LockRequest(caller),
		sequenceLock(caller),
	}

	result := &WithdrawResult{
		Amount: amount,
	}
	err = e.run(locks, func(trx storage.Transaction) error {
		if err := accept(trx, caller, sequence); nil != err {
			return err
		}
		g, err := round.ReadGlobal(trx)
		if nil != err {
			return err
		}
		err = vault.Withdraw(trx, e.transferer, g, caller, amount)
		if nil != err {
			return err
		}
		result.VaultBalance = balance.Get(trx, g.Vault)
		result.OwnerBalance = balance.Get(trx, g.Owner)
		return nil
	})
	if nil != err {
		e.log.Debugf("withdraw: %d  caller: %s  error: %s", amount, caller, err)
		return nil, err
	}

	e.log.Infof("withdraw: %d  vault balance: %d", amount, result.VaultBalance)
	e.publish("withdraw", result)
	return result, nil
}

// Deposit - credit an account, only on test networks
func (e *Engine) Deposit(owner *account.Account, amount uint64) (uint64, error) {
	if !e.testing {
		return 0, fault.NotAvailableInLiveChain
	}
	if err := e.checkCaller(owner); nil != err {
		return 0, err
	}

	total := uint64(0)
	err := e.run([]storage.LockRequest{balance.LockRequest(owner)}, func(trx storage.Transaction) error {
		err := e.transferer.Deposit(trx, owner, amount)
		if nil != err {
			return err
		}
		total = balance.Get(trx, owner)
		return nil
	})
	if nil != err {
		e.log.Debugf("deposit: %d  to: %s  error: %s", amount, owner, err)
		return 0, err
	}

	e.log.Infof("deposit: %d  to: %s  balance: %d", amount, owner, total)
	e.publish("deposit", map[string]interface{}{"owner": owner, "amount": amount, "balance": total})
	return total, nil
}
