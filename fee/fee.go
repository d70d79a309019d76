// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fee - split of sale proceeds and the claim payout rate
//
// all rates are per mille; results are truncated toward zero
package fee

import (
	"math/bits"

	"github.com/bitmark-inc/slotd/fault"
)

// rate limits
const (
	PerMille     = 1000
	MaxSaleFee   = PerMille - 1
	payoutBase   = 2 * PerMille
	MaxPayoutFee = payoutBase - 1
)

// Split - divide the gross price of fill slots between vault and fee receiver
//
// the two shares are truncated independently so their sum may be
// less than the gross amount
func Split(fill uint64, price uint64, feePerMille uint64) (vaultShare uint64, feeShare uint64, err error) {
	if feePerMille > MaxSaleFee {
		return 0, 0, fault.MaxFeeError
	}

	gross, err := Gross(fill, price)
	if nil != err {
		return 0, 0, err
	}

	vaultShare = scale(gross, PerMille-feePerMille)
	feeShare = scale(gross, feePerMille)
	return vaultShare, feeShare, nil
}

// Gross - total price of a number of slots
func Gross(slots uint64, price uint64) (uint64, error) {
	hi, lo := bits.Mul64(slots, price)
	if 0 != hi {
		return 0, fault.ValueOverflow
	}
	return lo, nil
}

// Payout - amount paid for claiming a number of slots
//
// floor((2000 - fee) * slots * price / 1000)
func Payout(slots uint64, price uint64, feePerMille uint64) (uint64, error) {
	if feePerMille > MaxPayoutFee {
		return 0, fault.MaxFeeError
	}

	gross, err := Gross(slots, price)
	if nil != err {
		return 0, err
	}

	hi, lo := bits.Mul64(gross, payoutBase-feePerMille)
	if hi >= PerMille {
		return 0, fault.ValueOverflow
	}
	quotient, _ := bits.Div64(hi, lo, PerMille)
	return quotient, nil
}

// amount * rate / 1000 for rate <= 1000, cannot overflow
func scale(amount uint64, rate uint64) uint64 {
	hi, lo := bits.Mul64(amount, rate)
	quotient, _ := bits.Div64(hi, lo, PerMille)
	return quotient
}
