// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/balance"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/round"
	"github.com/bitmark-inc/slotd/settlement"
	"github.com/bitmark-inc/slotd/storage"
)

// ClaimResult - the outcome of a claim
type ClaimResult struct {
	Slots   uint64                  `json:"slots"`
	Payout  uint64                  `json:"payout"`
	Account *settlement.UserAccount `json:"account"`
}

// Claim - pay the caller for every slot that can be settled
//
// slots from the caller's latest round are paid only once a newer
// round exists
func (e *Engine) Claim(caller *account.Account, sequence uint64) (*ClaimResult, error) {
	if err := e.checkCaller(caller); nil != err {
		return nil, err
	}

	// the vault never changes once set so it can be read before locking
	g, err := round.ReadGlobal(storage.Committed)
	if nil != err {
		return nil, err
	}

	locks := []storage.LockRequest{
		storage.Pool.Global.Shared(round.GlobalKey),
		storage.Pool.Users.Exclusive(caller.Bytes()),
		balance.LockRequest(caller),
		balance.LockRequest(g.Vault),
		sequenceLock(caller),
	}

	result := &ClaimResult{}
	err = e.run(locks, func(trx storage.Transaction) error {
		if err := accept(trx, caller, sequence); nil != err {
			return err
		}
		g, err := round.ReadGlobal(trx)
		if nil != err {
			return err
		}
		u, err := settlement.Read(trx, caller)
		if nil != err {
			return err
		}

		slots, payout, err := u.Claim(g.RoundCounter, g.Price, g.Fee)
		if nil != err {
			return err
		}
		if 0 == slots && e.strictClaim {
			return fault.AlreadyClaim
		}

		err = e.transferer.Transfer(trx, g.Vault, caller, payout)
		if nil != err {
			return err
		}
		u.Store(trx, caller)

		result.Slots = slots
		result.Payout = payout
		result.Account = u
		return nil
	})
	if nil != err {
		e.log.Debugf("claim: caller: %s  error: %s", caller, err)
		return nil, err
	}

	e.log.Infof("claim: slots: %d  payout: %d  caller: %s", result.Slots, result.Payout, caller)
	e.publish("claim", result)
	return result, nil
}
