// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package round_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/round"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		index    uint64
		capacity uint64
		err      error
	}{
		{0, 0, fault.InvalidRoundIndex},
		{1, 2, nil},
		{2, 4, nil},
		{3, 8, nil},
		{62, 1 << 62, nil},
		{63, 1 << 63, nil},
		{64, 0, fault.InvalidRoundIndex},
	}

	for i, item := range tests {
		capacity, err := round.Capacity(item.index)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.capacity, capacity, "%d: capacity", i)
	}
}

func TestAdvanceWithinRound(t *testing.T) {
	l, err := round.NewLedger(3)
	assert.Nil(t, err, "new ledger")

	fill, transition, err := l.Advance(5)
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(5), fill, "fill")
	assert.Equal(t, round.Filled, transition, "transition")
	assert.Equal(t, round.Ledger{Index: 3, Capacity: 8, Filled: 5}, *l, "ledger")

	fill, transition, err = l.Advance(2)
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(2), fill, "fill")
	assert.Equal(t, round.Filled, transition, "transition")
	assert.Equal(t, uint64(1), l.Remaining(), "remaining")
}

func TestAdvanceExactFillRollsOver(t *testing.T) {
	l, _ := round.NewLedger(2)
	l.Filled = 1

	fill, transition, err := l.Advance(3)
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(3), fill, "fill")
	assert.Equal(t, round.RolledOver, transition, "transition")
	assert.Equal(t, round.Ledger{Index: 3, Capacity: 8, Filled: 0}, *l, "ledger")
}

func TestAdvanceClampsAndDropsExcess(t *testing.T) {
	l, _ := round.NewLedger(1)

	fill, transition, err := l.Advance(3)
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(2), fill, "clamped fill")
	assert.Equal(t, round.RolledOver, transition, "transition")
	assert.Equal(t, round.Ledger{Index: 2, Capacity: 4, Filled: 0}, *l, "excess carried into next round")

	// one rollover per call even for very large requests
	fill, transition, err = l.Advance(^uint64(0))
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(4), fill, "clamped fill")
	assert.Equal(t, round.RolledOver, transition, "transition")
	assert.Equal(t, round.Ledger{Index: 3, Capacity: 8, Filled: 0}, *l, "ledger")
}

func TestAdvanceNeverOverfills(t *testing.T) {
	l, _ := round.NewLedger(1)
	requests := []uint64{1, 1, 3, 2, 5, 1, 1, 100, 7, 9, 33}

	for i, amount := range requests {
		before := *l
		fill, transition, err := l.Advance(amount)
		assert.Nil(t, err, "%d: advance", i)
		assert.True(t, fill <= amount, "%d: fill over request", i)
		assert.True(t, l.Filled <= l.Capacity, "%d: filled over capacity", i)
		if round.RolledOver == transition {
			assert.Equal(t, before.Remaining(), fill, "%d: fill at rollover", i)
			assert.Equal(t, 2*before.Capacity, l.Capacity, "%d: capacity not doubled", i)
			assert.Equal(t, before.Index+1, l.Index, "%d: index", i)
		} else {
			assert.Equal(t, amount, fill, "%d: partial fill", i)
		}
	}
}

func TestAdvanceFinalRound(t *testing.T) {
	l, _ := round.NewLedger(round.MaxIndex)
	l.Filled = l.Capacity - 2

	fill, transition, err := l.Advance(5)
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(2), fill, "fill")
	assert.Equal(t, round.Filled, transition, "final round rolled over")
	assert.Equal(t, l.Capacity, l.Filled, "final round not full")

	_, _, err = l.Advance(1)
	assert.Equal(t, fault.OverMaxSlot, err, "purchase from exhausted round")
}

func TestAdvanceZero(t *testing.T) {
	l, _ := round.NewLedger(1)
	_, _, err := l.Advance(0)
	assert.Equal(t, fault.InvalidAmount, err, "zero amount")
	assert.Equal(t, uint64(0), l.Filled, "zero amount changed ledger")
}

func TestLedgerPacking(t *testing.T) {
	l := &round.Ledger{Index: 7, Capacity: 128, Filled: 99}

	unpacked, err := round.UnpackLedger(l.Pack())
	assert.Nil(t, err, "unpack")
	assert.Equal(t, l, unpacked, "ledger")

	packed := l.Pack()
	_, err = round.UnpackLedger(packed[:len(packed)-1])
	assert.Equal(t, fault.RecordTruncated, err, "truncated record")

	_, err = round.UnpackLedger([]byte{0x01})
	assert.Equal(t, fault.UnexpectedRecordType, err, "wrong record type")

	bad := &round.Ledger{Index: 1, Capacity: 2, Filled: 3}
	_, err = round.UnpackLedger(bad.Pack())
	assert.Equal(t, fault.CorruptRecord, err, "overfilled record")
}

func TestTransitionText(t *testing.T) {
	for _, transition := range []round.Transition{round.Filled, round.RolledOver} {
		text, err := transition.MarshalText()
		assert.Nil(t, err, "marshal")

		var decoded round.Transition
		err = decoded.UnmarshalText(text)
		assert.Nil(t, err, "unmarshal")
		assert.Equal(t, transition, decoded, "transition")
	}

	var decoded round.Transition
	assert.Equal(t, fault.InvalidTransition, decoded.UnmarshalText([]byte("Closed")), "unknown name")
}
