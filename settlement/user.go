// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/fee"
	"github.com/bitmark-inc/slotd/storage"
	"github.com/bitmark-inc/slotd/util"
)

const (
	userRecord = 3

	// pending round of an account that never purchased
	neverPurchased = 0
)

// UserAccount - settlement ledger for one caller
type UserAccount struct {
	Settled         uint64 `json:"settled"`
	Pending         uint64 `json:"pending"`
	PendingRound    uint64 `json:"pendingRound"`
	LifetimeClaimed uint64 `json:"lifetimeClaimed"`
}

// Purchase - record slots bought in a round
//
// any earlier pending slots move to settled whether or not
// their round has closed
func (u *UserAccount) Purchase(fill uint64, roundIndex uint64) error {
	if 0 == roundIndex {
		return fault.InvalidRoundIndex
	}

	settled := uint64(0)
	if neverPurchased != u.PendingRound {
		settled = u.Settled + u.Pending
		if settled < u.Settled {
			return fault.ValueOverflow
		}
	}

	u.Settled = settled
	u.Pending = fill
	u.PendingRound = roundIndex
	return nil
}

// Payable - slots that can be claimed when the round counter has the given value
//
// the second result is true if the pending slots are included
func (u *UserAccount) Payable(roundCounter uint64) (uint64, bool, error) {
	if roundCounter < u.PendingRound+1 {
		return u.Settled, false, nil
	}
	slots := u.Settled + u.Pending
	if slots < u.Settled {
		return 0, false, fault.ValueOverflow
	}
	return slots, true, nil
}

// Claim - pay out all claimable slots and clear the pools paid
//
// returns the slots paid and the payout; on error the account is unchanged
func (u *UserAccount) Claim(roundCounter uint64, price uint64, feePerMille uint64) (uint64, uint64, error) {
	slots, withPending, err := u.Payable(roundCounter)
	if nil != err {
		return 0, 0, err
	}

	payout, err := fee.Payout(slots, price, feePerMille)
	if nil != err {
		return 0, 0, err
	}

	lifetime := u.LifetimeClaimed + payout
	if lifetime < u.LifetimeClaimed {
		return 0, 0, fault.ValueOverflow
	}

	u.Settled = 0
	if withPending {
		u.Pending = 0
	}
	u.LifetimeClaimed = lifetime
	return slots, payout, nil
}

// Outstanding - payout owed for every slot not yet claimed
func (u *UserAccount) Outstanding(price uint64, feePerMille uint64) (uint64, error) {
	slots := u.Settled + u.Pending
	if slots < u.Settled {
		return 0, fault.ValueOverflow
	}
	return fee.Payout(slots, price, feePerMille)
}

// Pack - binary record
func (u *UserAccount) Pack() []byte {
	return util.Packed{}.
		AppendUint64(userRecord).
		AppendUint64(u.Settled).
		AppendUint64(u.Pending).
		AppendUint64(u.PendingRound).
		AppendUint64(u.LifetimeClaimed)
}

// Unpack - decode a user account record
func Unpack(record []byte) (*UserAccount, error) {
	unpacker := util.NewUnpacker(record)
	if userRecord != unpacker.Uint64() {
		if nil != unpacker.Err() {
			return nil, unpacker.Err()
		}
		return nil, fault.UnexpectedRecordType
	}
	u := &UserAccount{
		Settled:         unpacker.Uint64(),
		Pending:         unpacker.Uint64(),
		PendingRound:    unpacker.Uint64(),
		LifetimeClaimed: unpacker.Uint64(),
	}
	if nil != unpacker.Err() {
		return nil, unpacker.Err()
	}
	return u, nil
}

// Read - fetch the account of a caller
//
// fails with UninitializedAccount if the caller never purchased
func Read(r storage.Reader, owner *account.Account) (*UserAccount, error) {
	record := r.Get(storage.Pool.Users, owner.Bytes())
	if nil == record {
		return nil, fault.UninitializedAccount
	}
	return Unpack(record)
}

// ReadOrNew - fetch the account of a caller or an empty one
func ReadOrNew(r storage.Reader, owner *account.Account) (*UserAccount, error) {
	u, err := Read(r, owner)
	if fault.UninitializedAccount == err {
		return &UserAccount{}, nil
	}
	return u, err
}

// Store - write the account as part of a transaction
func (u *UserAccount) Store(trx storage.Transaction, owner *account.Account) {
	trx.Put(storage.Pool.Users, owner.Bytes(), u.Pack())
}

// Map - run f on every stored account
//
// stops at the first error
func Map(f func(owner *account.Account, u *UserAccount) error) error {
	return storage.Pool.Users.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.AccountFromBytes(key)
		if nil != err {
			return err
		}
		u, err := Unpack(value)
		if nil != err {
			return err
		}
		return f(owner, u)
	})
}

// Entry - an account with its settlement ledger
type Entry struct {
	Owner   *account.Account `json:"owner"`
	Account *UserAccount     `json:"account"`
}

// List - up to count accounts in key order, starting after the given
// account or from the first one if after is nil
func List(after *account.Account, count int) ([]Entry, error) {
	cursor := storage.Pool.Users.NewFetchCursor()
	if nil != after && nil != after.AccountInterface {
		cursor.Seek(append(after.Bytes(), 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]Entry, 0, len(elements))
	for _, e := range elements {
		owner, err := account.AccountFromBytes(e.Key)
		if nil != err {
			return nil, err
		}
		u, err := Unpack(e.Value)
		if nil != err {
			return nil, err
		}
		entries = append(entries, Entry{Owner: owner, Account: u})
	}
	return entries, nil
}
