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

// BuyResult - the outcome of a purchase
type BuyResult struct {
	RoundIndex uint64                  `json:"roundIndex"`
	Fill       uint64                  `json:"fill"`
	Transition round.Transition        `json:"transition"`
	VaultShare uint64                  `json:"vaultShare"`
	FeeShare   uint64                  `json:"feeShare"`
	Ledger     *round.Ledger           `json:"ledger"`
	Account    *settlement.UserAccount `json:"account"`
}

// Buy - purchase up to amount slots from the current round
//
// roundIndex must name the current round; the purchase that completes
// a round buys only the slots left in it and rolls the round over
//
// sequence identifies the signed request and is accepted only once
func (e *Engine) Buy(caller *account.Account, sequence uint64, roundIndex uint64, amount uint64) (*BuyResult, error) {
	if err := e.checkCaller(caller); nil != err {
		return nil, err
	}
	if 0 == amount {
		return nil, fault.InvalidAmount
	}

	// the owner never changes once set so it can be read before locking
	g, err := round.ReadGlobal(storage.Committed)
	if nil != err {
		return nil, err
	}

	locks := []storage.LockRequest{
		globalLock(),
		ledgerLock(),
		storage.Pool.Users.Exclusive(caller.Bytes()),
		balance.LockRequest(caller),
		balance.LockRequest(g.Vault),
		balance.LockRequest(g.Owner),
		sequenceLock(caller),
	}

	result := &BuyResult{
		RoundIndex: roundIndex,
	}
	err = e.run(locks, func(trx storage.Transaction) error {
		if err := accept(trx, caller, sequence); nil != err {
			return err
		}
		g, err := round.ReadGlobal(trx)
		if nil != err {
			return err
		}
		l, err := round.ReadLedger(trx)
		if nil != err {
			return err
		}
		if roundIndex != l.Index {
			return fault.InvalidRoundIndex
		}

		fill, transition, err := l.Advance(amount)
		if nil != err {
			return err
		}

		vaultShare, feeShare, err := fee.Split(fill, g.Price, g.Fee)
		if nil != err {
			return err
		}

		err = e.transferer.Transfer(trx, caller, g.Vault, vaultShare)
		if nil != err {
			return err
		}
		err = e.transferer.Transfer(trx, caller, g.Owner, feeShare)
		if nil != err {
			return err
		}

		if round.RolledOver == transition {
			g.RoundCounter += 1
			g.Store(trx)
		}
		l.Store(trx)

		u, err := settlement.ReadOrNew(trx, caller)
		if nil != err {
			return err
		}
		err = u.Purchase(fill, roundIndex)
		if nil != err {
			return err
		}
		u.Store(trx, caller)

		result.Fill = fill
		result.Transition = transition
		result.VaultShare = vaultShare
		result.FeeShare = feeShare
		result.Ledger = l
		result.Account = u
		return nil
	})
	if nil != err {
		e.log.Debugf("buy: round: %d  amount: %d  caller: %s  error: %s", roundIndex, amount, caller, err)
		return nil, err
	}

	e.log.Infof("buy: round: %d  requested: %d  fill: %d  vault: %d  fee: %d  caller: %s", roundIndex, amount, result.Fill, result.VaultShare, result.FeeShare, caller)
	e.publish("buy", result)

	if round.RolledOver == result.Transition {
		e.log.Infof("rollover: round: %d  capacity: %d", result.Ledger.Index, result.Ledger.Capacity)
		e.publish("rollover", result.Ledger)
	}
	return result, nil
}
