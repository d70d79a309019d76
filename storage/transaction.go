// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/slotd/fault"
)

// Transaction - a set of writes committed atomically
//
// a transaction must be finished by exactly one of Commit or Abort;
// both release any record locks it holds
type Transaction interface {
	Reader
	Lock(requests ...LockRequest)
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	mutex   sync.Mutex
	batch   *leveldb.Batch
	overlay *overlay
	release func()
	closed  bool
}

// NewDBTransaction - start a transaction
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.NotInitialised
	}
	if poolData.readOnly {
		return nil, fault.ReadOnlyDatabase
	}

	return &transaction{
		batch:   new(leveldb.Batch),
		overlay: newOverlay(),
	}, nil
}

// Lock - acquire record locks for the life of the transaction
//
// all locks must be requested in one call so they can be
// taken in canonical order
func (t *transaction) Lock(requests ...LockRequest) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if nil != t.release {
		fault.Panic("transaction: locks already held")
	}
	t.release = Locks.Acquire(requests...)
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	prefixed := p.prefixKey(key)
	stored := make([]byte, len(value))
	copy(stored, value)

	t.batch.Put(prefixed, stored)
	t.overlay.set(dbPut, prefixed, stored)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	prefixed := p.prefixKey(key)
	t.batch.Delete(prefixed)
	t.overlay.set(dbDelete, prefixed, nil)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	t.mutex.Lock()
	value, deleted, found := t.overlay.get(p.prefixKey(key))
	t.mutex.Unlock()

	if deleted {
		return nil
	}
	if found {
		return value
	}
	return p.Get(key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	return nil != t.Get(p, key)
}

// Commit - write the batch to the database and release locks
func (t *transaction) Commit() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.closed {
		return fault.TransactionClosed
	}
	defer t.finish()

	if 0 == t.batch.Len() {
		return nil
	}

	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.db {
		return fault.NotInitialised
	}
	return poolData.db.Write(t.batch, nil)
}

// Abort - discard all writes and release locks
func (t *transaction) Abort() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.closed {
		return
	}
	t.finish()
}

func (t *transaction) finish() {
	t.closed = true
	t.batch.Reset()
	t.overlay.clear()
	if nil != t.release {
		t.release()
		t.release = nil
	}
}
