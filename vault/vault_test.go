// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/round"
	"github.com/bitmark-inc/slotd/sale/mocks"
	"github.com/bitmark-inc/slotd/vault"
)

func TestIdentity(t *testing.T) {
	live := vault.Identity(false)
	test := vault.Identity(true)

	assert.False(t, live.IsTesting(), "live vault is testing")
	assert.True(t, test.IsTesting(), "test vault is not testing")
	assert.Equal(t, live.PublicKeyBytes(), test.PublicKeyBytes(), "public keys differ")
	assert.True(t, live.Equal(vault.Identity(false)), "identity not stable")

	decoded, err := account.AccountFromBase58(test.String())
	assert.Nil(t, err, "decode vault")
	assert.True(t, test.Equal(decoded), "vault text form")
}

func TestWithdraw(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key, _ := account.NewPrivateKey(true)
	owner := key.Account()
	other, _ := account.NewPrivateKey(true)

	g := &round.GlobalConfig{
		Owner: owner,
		Price: 1,
		Vault: vault.Identity(true),
	}

	mock := mocks.NewMockTransferer(ctl)
	mock.EXPECT().Transfer(nil, g.Vault, owner, uint64(25)).Return(nil).Times(1)

	assert.Nil(t, vault.Withdraw(nil, mock, g, owner, 25), "withdraw")
	assert.Equal(t, fault.NotAllowedOwner, vault.Withdraw(nil, mock, g, other.Account(), 25), "other caller")
	assert.Equal(t, fault.InvalidAmount, vault.Withdraw(nil, mock, g, owner, 0), "zero amount")
}
