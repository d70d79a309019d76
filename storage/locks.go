// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"
	"sync"
)

// LockRequest - one record to lock
type LockRequest struct {
	key    string
	shared bool
}

// Exclusive - request a write lock on a record
func (p *PoolHandle) Exclusive(key []byte) LockRequest {
	return LockRequest{key: string(p.prefixKey(key)), shared: false}
}

// Shared - request a read lock on a record
func (p *PoolHandle) Shared(key []byte) LockRequest {
	return LockRequest{key: string(p.prefixKey(key)), shared: true}
}

type recordLock struct {
	sync.RWMutex
	users int
}

// RecordLocks - per record read/write locks created on demand
type RecordLocks struct {
	sync.Mutex
	locks map[string]*recordLock
}

// Locks - the record locks for all pools
var Locks = &RecordLocks{
	locks: make(map[string]*recordLock),
}

// Acquire - take all requested locks in sorted key order
//
// duplicate keys are merged, exclusive wins over shared;
// the returned function releases everything
func (l *RecordLocks) Acquire(requests ...LockRequest) func() {

	wanted := make(map[string]bool, len(requests))
	for _, r := range requests {
		shared, seen := wanted[r.key]
		wanted[r.key] = r.shared && (!seen || shared)
	}

	keys := make([]string, 0, len(wanted))
	for k := range wanted {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	held := make([]*recordLock, len(keys))

	l.Lock()
	for i, k := range keys {
		rl, ok := l.locks[k]
		if !ok {
			rl = &recordLock{}
			l.locks[k] = rl
		}
		rl.users += 1
		held[i] = rl
	}
	l.Unlock()

	for i, k := range keys {
		if wanted[k] {
			held[i].RLock()
		} else {
			held[i].Lock()
		}
	}

	return func() {
		for i := len(keys) - 1; i >= 0; i -= 1 {
			if wanted[keys[i]] {
				held[i].RUnlock()
			} else {
				held[i].Unlock()
			}
		}

		l.Lock()
		for i, k := range keys {
			held[i].users -= 1
			if 0 == held[i].users {
				delete(l.locks, k)
			}
		}
		l.Unlock()
	}
}

// Count - number of records currently locked or waited on
func (l *RecordLocks) Count() int {
	l.Lock()
	defer l.Unlock()
	return len(l.locks)
}
