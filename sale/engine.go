// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sale

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/messagebus"
	"github.com/bitmark-inc/slotd/storage"
	"github.com/bitmark-inc/slotd/vault"
)

// Transferer - moves value between accounts inside a transaction
type Transferer interface {
	Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error
	Deposit(trx storage.Transaction, to *account.Account, amount uint64) error
}

// Options - engine settings
type Options struct {
	Testing     bool              // test network accounts and deposits
	StrictClaim bool              // fail claims with nothing payable
	Events      *messagebus.Queue // optional destination for committed events
}

// Engine - the sale operations
type Engine struct {
	log         *logger.L
	transferer  Transferer
	testing     bool
	strictClaim bool
	vault       *account.Account
	events      *messagebus.Queue
}

// New - create an engine
func New(log *logger.L, transferer Transferer, options Options) *Engine {
	return &Engine{
		log:         log,
		transferer:  transferer,
		testing:     options.Testing,
		strictClaim: options.StrictClaim,
		vault:       vault.Identity(options.Testing),
		events:      options.Events,
	}
}

// Vault - the vault account of this engine
func (e *Engine) Vault() *account.Account {
	return e.vault
}

// run f inside a transaction holding the requested locks
func (e *Engine) run(locks []storage.LockRequest, f func(trx storage.Transaction) error) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Lock(locks...)

	err = f(trx)
	if nil != err {
		trx.Abort()
		return fault.ReportCorruption("sale", err)
	}
	return trx.Commit()
}

// callers must belong to the same network as the engine
func (e *Engine) checkCaller(caller *account.Account) error {
	if nil == caller || nil == caller.AccountInterface {
		return fault.MissingParameters
	}
	if caller.IsTesting() != e.testing {
		return fault.WrongNetworkForPublicKey
	}
	return nil
}

// queue a committed event, the payload is JSON
func (e *Engine) publish(command string, item interface{}) {
	if nil == e.events {
		return
	}
	data, err := json.Marshal(item)
	if nil != err {
		e.log.Errorf("event: %s  marshal error: %s", command, err)
		return
	}
	if !e.events.Send(command, data) {
		e.log.Warnf("event: %s  discarded: queue full", command)
	}
}
