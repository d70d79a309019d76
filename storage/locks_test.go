// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/storage"
)

func TestExclusiveLockSerialises(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	p := storage.Pool.TestData

	key := []byte("record")
	active := 0
	maximum := 0
	var m sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := storage.Locks.Acquire(p.Exclusive(key))
			m.Lock()
			active += 1
			if active > maximum {
				maximum = active
			}
			m.Unlock()

			time.Sleep(2 * time.Millisecond)

			m.Lock()
			active -= 1
			m.Unlock()
			release()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maximum, "exclusive lock held concurrently")
	assert.Equal(t, 0, storage.Locks.Count(), "lock entries leaked")
}

func TestSharedLocksOverlap(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	p := storage.Pool.Global
	key := []byte("global")

	first := storage.Locks.Acquire(p.Shared(key))

	done := make(chan struct{})
	go func() {
		second := storage.Locks.Acquire(p.Shared(key))
		second()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("shared lock blocked by shared lock")
	}

	blocked := make(chan struct{})
	go func() {
		exclusive := storage.Locks.Acquire(p.Exclusive(key))
		close(blocked)
		exclusive()
	}()

	select {
	case <-blocked:
		t.Fatal("exclusive lock granted while shared lock held")
	case <-time.After(20 * time.Millisecond):
	}

	first()
	<-blocked
}

func TestLockOrderingAvoidsDeadlock(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	a := storage.Pool.Users.Exclusive([]byte("a"))
	b := storage.Pool.Balances.Exclusive([]byte("b"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i += 1 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			storage.Locks.Acquire(a, b)()
		}()
		go func() {
			defer wg.Done()
			storage.Locks.Acquire(b, a, b)()
		}()
	}

	finished := make(chan struct{})
	go func() {
		wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock")
	}
}
