// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package round

import (
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/storage"
	"github.com/bitmark-inc/slotd/util"
)

// limits of the round index
const (
	FirstIndex = 1
	MaxIndex   = 63
)

// Transition - the result of advancing a ledger
type Transition int

// possible transitions
const (
	Filled     Transition = iota // slots recorded, round unchanged
	RolledOver                   // round completed and replaced by the next
)

// String - name of the transition
func (t Transition) String() string {
	switch t {
	case Filled:
		return "Filled"
	case RolledOver:
		return "RolledOver"
	default:
		return "*Unknown*"
	}
}

// MarshalText - transition as its name
func (t Transition) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText - transition from its name
func (t *Transition) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Filled":
		*t = Filled
	case "RolledOver":
		*t = RolledOver
	default:
		return fault.InvalidTransition
	}
	return nil
}

// Ledger - the current round
type Ledger struct {
	Index    uint64 `json:"index"`
	Capacity uint64 `json:"capacity"`
	Filled   uint64 `json:"filled"`
}

// LedgerKey - key of the single ledger record in the rounds pool
var LedgerKey = []byte("current")

// Capacity - number of slots in the round with the given index
func Capacity(index uint64) (uint64, error) {
	if index < FirstIndex || index > MaxIndex {
		return 0, fault.InvalidRoundIndex
	}
	return uint64(1) << index, nil
}

// NewLedger - an empty round
func NewLedger(index uint64) (*Ledger, error) {
	capacity, err := Capacity(index)
	if nil != err {
		return nil, err
	}
	return &Ledger{
		Index:    index,
		Capacity: capacity,
		Filled:   0,
	}, nil
}

// Remaining - unsold slots in the round
func (l *Ledger) Remaining() uint64 {
	return l.Capacity - l.Filled
}

// Advance - record a purchase of up to amount slots
//
// a request that does not complete the round is filled in full;
// otherwise only the remaining slots are filled, the rest of the
// request is dropped and the ledger rolls over to the next index
//
// the final round cannot roll over: it stays full and every later
// request fails
func (l *Ledger) Advance(amount uint64) (uint64, Transition, error) {
	if 0 == amount {
		return 0, Filled, fault.InvalidAmount
	}

	remaining := l.Remaining()
	if 0 == remaining {
		return 0, Filled, fault.OverMaxSlot
	}

	if amount < remaining {
		l.Filled += amount
		return amount, Filled, nil
	}

	if l.Index >= MaxIndex {
		l.Filled = l.Capacity
		return remaining, Filled, nil
	}

	next, err := NewLedger(l.Index + 1)
	if nil != err {
		return 0, Filled, err
	}
	*l = *next

	return remaining, RolledOver, nil
}

// Pack - binary record
func (l *Ledger) Pack() []byte {
	return util.Packed{}.
		AppendUint64(ledgerRecord).
		AppendUint64(l.Index).
		AppendUint64(l.Capacity).
		AppendUint64(l.Filled)
}

// UnpackLedger - decode a ledger record
func UnpackLedger(record []byte) (*Ledger, error) {
	u := util.NewUnpacker(record)
	if ledgerRecord != u.Uint64() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.UnexpectedRecordType
	}
	l := &Ledger{
		Index:    u.Uint64(),
		Capacity: u.Uint64(),
		Filled:   u.Uint64(),
	}
	if nil != u.Err() {
		return nil, u.Err()
	}
	if l.Filled > l.Capacity {
		return nil, fault.CorruptRecord
	}
	return l, nil
}

// ReadLedger - fetch the current round
//
// fails with UninitializedAccount if no round was created
func ReadLedger(r storage.Reader) (*Ledger, error) {
	record := r.Get(storage.Pool.Rounds, LedgerKey)
	if nil == record {
		return nil, fault.UninitializedAccount
	}
	return UnpackLedger(record)
}

// Store - write the ledger as part of a transaction
func (l *Ledger) Store(trx storage.Transaction) {
	trx.Put(storage.Pool.Rounds, LedgerKey, l.Pack())
}
