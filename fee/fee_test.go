// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/fee"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		fill       uint64
		price      uint64
		fee        uint64
		vaultShare uint64
		feeShare   uint64
	}{
		{2, 100, 50, 190, 10},
		{0, 100, 50, 0, 0},
		{1, 1, 0, 1, 0},
		{1, 1, 999, 0, 0},
		{3, 7, 33, 20, 0},
		{7, 13, 125, 79, 11},
		{1, 1000, 999, 1, 999},
		{1, ^uint64(0), 0, ^uint64(0), 0},
		{1, ^uint64(0), 500, ^uint64(0) / 2, ^uint64(0) / 2},
	}

	for i, item := range tests {
		vaultShare, feeShare, err := fee.Split(item.fill, item.price, item.fee)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.vaultShare, vaultShare, "%d: vault share", i)
		assert.Equal(t, item.feeShare, feeShare, "%d: fee share", i)
	}
}

func TestSplitNeverExceedsGross(t *testing.T) {
	for fill := uint64(0); fill < 20; fill += 1 {
		for price := uint64(1); price < 50; price += 7 {
			for rate := uint64(0); rate < 1000; rate += 37 {
				vaultShare, feeShare, err := fee.Split(fill, price, rate)
				assert.Nil(t, err, "split error")

				gross := fill * price
				assert.True(t, vaultShare+feeShare <= gross, "shares over gross: %d %d %d", fill, price, rate)
				assert.True(t, gross-vaultShare-feeShare < 2, "rounding loss too large: %d %d %d", fill, price, rate)

				again, againFee, _ := fee.Split(fill, price, rate)
				assert.Equal(t, vaultShare, again, "vault share not reproducible")
				assert.Equal(t, feeShare, againFee, "fee share not reproducible")
			}
		}
	}
}

func TestSplitErrors(t *testing.T) {
	_, _, err := fee.Split(1, 100, 1000)
	assert.Equal(t, fault.MaxFeeError, err, "fee of 1000")

	_, _, err = fee.Split(2, ^uint64(0), 0)
	assert.Equal(t, fault.ValueOverflow, err, "gross overflow")
}

func TestPayout(t *testing.T) {
	tests := []struct {
		slots  uint64
		price  uint64
		fee    uint64
		payout uint64
	}{
		{2, 100, 50, 390},
		{0, 100, 50, 0},
		{1, 1, 0, 2},
		{1, 1, 999, 1},
		{3, 7, 33, 41},
		{1, 100, 1500, 50},
		{1, ^uint64(0) / 2, 0, ^uint64(0) - 1},
	}

	for i, item := range tests {
		payout, err := fee.Payout(item.slots, item.price, item.fee)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.payout, payout, "%d: payout", i)
	}
}

func TestPayoutErrors(t *testing.T) {
	_, err := fee.Payout(1, 100, 2000)
	assert.Equal(t, fault.MaxFeeError, err, "fee of 2000")

	_, err = fee.Payout(1, ^uint64(0), 0)
	assert.Equal(t, fault.ValueOverflow, err, "payout overflow")

	_, err = fee.Payout(3, ^uint64(0), 0)
	assert.Equal(t, fault.ValueOverflow, err, "gross overflow")
}
