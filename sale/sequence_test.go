// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/sale"
)

func TestReplayedBuyIsRejected(t *testing.T) {
	f := setup(t, nil, sale.Options{Testing: true})
	defer f.teardown()

	f.start(t, 1000)

	sequence := next()
	_, err := f.engine.Buy(f.buyer, sequence, 1, 1)
	assert.Nil(t, err, "first buy")

	_, err = f.engine.Buy(f.buyer, sequence, 1, 1)
	assert.Equal(t, fault.RequestAlreadyUsed, err, "replayed buy")

	assert.Equal(t, uint64(900), f.engine.Balance(f.buyer), "buyer charged once")
	l, _ := f.engine.Round()
	assert.Equal(t, uint64(1), l.Filled, "slots sold")
}

func TestOlderSequenceIsRejected(t *testing.T) {
	f := setup(t, nil, sale.Options{Testing: true})
	defer f.teardown()

	f.start(t, 1000)

	older := next()
	newer := next()

	_, err := f.engine.Buy(f.buyer, newer, 1, 1)
	assert.Nil(t, err, "newer buy")

	_, err = f.engine.Buy(f.buyer, older, 1, 1)
	assert.Equal(t, fault.RequestAlreadyUsed, err, "older buy")

	_, err = f.engine.Claim(f.buyer, newer)
	assert.Equal(t, fault.RequestAlreadyUsed, err, "sequence reused by claim")

	_, err = f.engine.Buy(f.buyer, 0, 1, 1)
	assert.Equal(t, fault.RequestAlreadyUsed, err, "zero sequence")
}

func TestFailedRequestKeepsSequence(t *testing.T) {
	f := setup(t, nil, sale.Options{Testing: true})
	defer f.teardown()

	f.start(t, 1000)

	sequence := next()
	_, err := f.engine.Buy(f.buyer, sequence, 2, 1)
	assert.Equal(t, fault.InvalidRoundIndex, err, "wrong round")

	_, err = f.engine.Buy(f.buyer, sequence, 1, 1)
	assert.Nil(t, err, "retry with the same sequence")
}

func TestSequencesArePerCaller(t *testing.T) {
	f := setup(t, nil, sale.Options{Testing: true})
	defer f.teardown()

	f.start(t, 1000)

	sequence := next()
	_, err := f.engine.UpdateFee(f.owner, sequence, 10)
	assert.Nil(t, err, "owner update fee")

	_, err = f.engine.Buy(f.buyer, sequence, 1, 1)
	assert.Nil(t, err, "buyer with the owner's sequence")

	_, err = f.engine.Withdraw(f.owner, sequence, 1)
	assert.Equal(t, fault.RequestAlreadyUsed, err, "owner reused sequence")

	_, err = f.engine.CreateRound(f.owner, sequence, 2)
	assert.Equal(t, fault.RequestAlreadyUsed, err, "owner reused sequence for round")
}
