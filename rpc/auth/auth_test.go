// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/rpc/auth"
)

func TestSignVerify(t *testing.T) {
	key, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "new key")

	now := time.Now()
	var r auth.Request
	r.Sign(key, "Slot.Buy", now, 1, 3)

	assert.True(t, key.Account().Equal(r.Caller), "caller")
	assert.Nil(t, r.Verify("Slot.Buy", now, 1, 3), "verify")
	assert.Nil(t, r.Verify("Slot.Buy", now.Add(4*time.Minute), 1, 3), "verify within skew")

	assert.Equal(t, fault.InvalidSignature, r.Verify("Slot.Buy", now, 1, 4), "changed argument")
	assert.Equal(t, fault.InvalidSignature, r.Verify("Vault.Withdraw", now, 1, 3), "changed method")
	assert.Equal(t, fault.InvalidTimestamp, r.Verify("Slot.Buy", now.Add(6*time.Minute), 1, 3), "expired")
	assert.Equal(t, fault.InvalidTimestamp, r.Verify("Slot.Buy", now.Add(-6*time.Minute), 1, 3), "from future")
}

func TestVerifyMissing(t *testing.T) {
	var r auth.Request
	assert.Equal(t, fault.MissingParameters, r.Verify("Slot.Claim", time.Now()), "empty request")
}

func TestMessageSeparatesFields(t *testing.T) {
	assert.NotEqual(t, auth.Message("A", 1, 12), auth.Message("A", 1, 1, 2), "field boundaries")
	assert.NotEqual(t, auth.Message("AB", 1), auth.Message("A", 1, 'B'), "method boundary")
}

func TestSequenceFollowsSigningTime(t *testing.T) {
	key, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "new key")

	now := time.Now()
	var first, second auth.Request
	first.Sign(key, "Slot.Buy", now, 1, 1)
	second.Sign(key, "Slot.Buy", now.Add(time.Nanosecond), 1, 1)

	assert.Equal(t, uint64(now.UnixNano()), first.Sequence(), "sequence")
	assert.True(t, second.Sequence() > first.Sequence(), "later signature is newer")
	assert.NotEqual(t, first.Signature, second.Signature, "signatures differ")

	var empty auth.Request
	assert.Equal(t, uint64(0), empty.Sequence(), "unsigned request")
}
