// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/balance"
	"github.com/bitmark-inc/slotd/messagebus"
	"github.com/bitmark-inc/slotd/sale"
	"github.com/bitmark-inc/slotd/storage"
)

const (
	testPrice = 100
	testFee   = 50
)

type fixture struct {
	dir    string
	engine *sale.Engine
	events *messagebus.Queue
	owner  *account.Account
	buyer  *account.Account
}

func setupTestLogger(dir string) {
	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
}

func setup(t *testing.T, transferer sale.Transferer, options sale.Options) *fixture {
	dir, err := ioutil.TempDir("", "sale-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	setupTestLogger(dir)

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	if nil == transferer {
		transferer = balance.New()
	}
	if nil == options.Events {
		options.Events = messagebus.NewQueue(100)
	}

	return &fixture{
		dir:    dir,
		engine: sale.New(logger.New("sale"), transferer, options),
		events: options.Events,
		owner:  newAccount(t, options.Testing),
		buyer:  newAccount(t, options.Testing),
	}
}

func (f *fixture) teardown() {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(f.dir)
}

func newAccount(t *testing.T, test bool) *account.Account {
	key, err := account.NewPrivateKey(test)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return key.Account()
}

var lastSequence uint64

// next - a request sequence newer than any issued before
func next() uint64 {
	return atomic.AddUint64(&lastSequence, 1)
}

// initialise the sale, open round one and fund the buyer
func (f *fixture) start(t *testing.T, funds uint64) {
	_, err := f.engine.Initialise(f.owner, next(), testPrice, testFee)
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	_, err = f.engine.CreateRound(f.owner, next(), 1)
	if nil != err {
		t.Fatalf("create round error: %s", err)
	}
	if 0 != funds {
		_, err = f.engine.Deposit(f.buyer, funds)
		if nil != err {
			t.Fatalf("deposit error: %s", err)
		}
	}
}

// collect queued event names
func (f *fixture) drain() []string {
	names := []string{}
	for {
		select {
		case m := <-f.events.Chan():
			names = append(names, m.Command)
		default:
			return names
		}
	}
}
