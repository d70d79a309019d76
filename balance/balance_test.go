// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/balance"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/storage"
)

func setup(t *testing.T) string {
	dir, err := ioutil.TempDir("", "balance-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels:    map[string]string{logger.DefaultTag: "critical"},
	})
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	return dir
}

func teardown(dir string) {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(dir)
}

func newAccount(t *testing.T) *account.Account {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return key.Account()
}

func TestDepositAndTransfer(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	alice := newAccount(t)
	bob := newAccount(t)
	l := balance.New()

	trx, _ := storage.NewDBTransaction()
	trx.Lock(balance.LockRequest(alice), balance.LockRequest(bob))
	assert.Nil(t, l.Deposit(trx, alice, 1000), "deposit")
	assert.Nil(t, l.Transfer(trx, alice, bob, 300), "transfer")
	assert.Equal(t, uint64(700), balance.Get(trx, alice), "alice inside transaction")
	assert.Equal(t, uint64(0), balance.Get(storage.Committed, alice), "alice committed before commit")
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, uint64(700), balance.Get(storage.Committed, alice), "alice")
	assert.Equal(t, uint64(300), balance.Get(storage.Committed, bob), "bob")
	assert.Equal(t, 0, storage.Locks.Count(), "locks held after commit")
}

func TestTransferErrors(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	alice := newAccount(t)
	bob := newAccount(t)
	l := balance.New()

	trx, _ := storage.NewDBTransaction()
	defer trx.Abort()

	assert.Nil(t, l.Transfer(trx, alice, bob, 0), "zero transfer")
	assert.Equal(t, fault.InsufficientFunds, l.Transfer(trx, alice, bob, 1), "empty account")

	assert.Nil(t, l.Deposit(trx, alice, 10), "deposit")
	assert.Equal(t, fault.InsufficientFunds, l.Transfer(trx, alice, bob, 11), "over balance")
	assert.Equal(t, fault.InvalidAmount, l.Deposit(trx, alice, 0), "zero deposit")

	assert.Nil(t, l.Deposit(trx, bob, ^uint64(0)), "large deposit")
	assert.Equal(t, fault.ValueOverflow, l.Transfer(trx, alice, bob, 1), "receiver overflow")
	assert.Equal(t, fault.ValueOverflow, l.Deposit(trx, bob, 1), "deposit overflow")

	assert.Nil(t, l.Transfer(trx, alice, alice, 10), "self transfer")
	assert.Equal(t, uint64(10), balance.Get(trx, alice), "self transfer changed balance")
}
