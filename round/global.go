// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package round

import (
	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/storage"
	"github.com/bitmark-inc/slotd/util"
)

// record type tags
const (
	globalRecord = 1
	ledgerRecord = 2
)

// GlobalKey - key of the single global record
var GlobalKey = []byte("global")

// GlobalConfig - the protocol wide parameters
type GlobalConfig struct {
	Owner        *account.Account `json:"owner"`
	Price        uint64           `json:"price"`
	Fee          uint64           `json:"fee"`
	RoundCounter uint64           `json:"roundCounter"`
	Vault        *account.Account `json:"vault"`
}

// IsOwner - check the caller against the stored owner
func (g *GlobalConfig) IsOwner(caller *account.Account) bool {
	return g.Owner.Equal(caller)
}

// Pack - binary record
func (g *GlobalConfig) Pack() []byte {
	return util.Packed{}.
		AppendUint64(globalRecord).
		AppendBytes(g.Owner.Bytes()).
		AppendUint64(g.Price).
		AppendUint64(g.Fee).
		AppendUint64(g.RoundCounter).
		AppendBytes(g.Vault.Bytes())
}

// UnpackGlobal - decode a global record
func UnpackGlobal(record []byte) (*GlobalConfig, error) {
	u := util.NewUnpacker(record)
	if globalRecord != u.Uint64() {
		if nil != u.Err() {
			return nil, u.Err()
		}
		return nil, fault.UnexpectedRecordType
	}

	ownerBytes := u.Bytes()
	price := u.Uint64()
	fee := u.Uint64()
	counter := u.Uint64()
	vaultBytes := u.Bytes()
	if nil != u.Err() {
		return nil, u.Err()
	}

	owner, err := account.AccountFromBytes(ownerBytes)
	if nil != err {
		return nil, err
	}
	vault, err := account.AccountFromBytes(vaultBytes)
	if nil != err {
		return nil, err
	}

	return &GlobalConfig{
		Owner:        owner,
		Price:        price,
		Fee:          fee,
		RoundCounter: counter,
		Vault:        vault,
	}, nil
}

// ReadGlobal - fetch the protocol state
//
// fails with UninitializedAccount before initialisation
func ReadGlobal(r storage.Reader) (*GlobalConfig, error) {
	record := r.Get(storage.Pool.Global, GlobalKey)
	if nil == record {
		return nil, fault.UninitializedAccount
	}
	return UnpackGlobal(record)
}

// Store - write the global state as part of a transaction
func (g *GlobalConfig) Store(trx storage.Transaction) {
	trx.Put(storage.Pool.Global, GlobalKey, g.Pack())
}

// Create - start the next round
//
// index must follow the round counter; an existing ledger is
// replaced, closing its round whether or not it was filled
func (g *GlobalConfig) Create(index uint64) (*Ledger, error) {
	if g.RoundCounter+1 != index {
		return nil, fault.InvalidRoundIndex
	}
	l, err := NewLedger(index)
	if nil != err {
		return nil, err
	}
	g.RoundCounter = index
	return l, nil
}
