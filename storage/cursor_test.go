// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/storage"
)

func TestFetch(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	p := storage.Pool.TestData
	store(t, p, sortedElements)
	store(t, storage.Pool.Users, []storage.Element{{Key: []byte("other"), Value: []byte("pool")}})

	cursor := p.NewFetchCursor()

	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, sortedElements[:3], first, "first block")

	rest, err := cursor.Fetch(100)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, sortedElements[3:], rest, "remaining block")

	empty, err := cursor.Fetch(1)
	assert.Nil(t, err, "fetch past end")
	assert.Equal(t, 0, len(empty), "elements past end")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor")
}

func TestSeek(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	p := storage.Pool.TestData
	store(t, p, sortedElements)

	elements, err := p.NewFetchCursor().Seek([]byte("key-six")).Fetch(2)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, sortedElements[4:6], elements, "elements after seek")
}

func TestMap(t *testing.T) {
	dir := setup(t)
	defer teardown(dir)

	p := storage.Pool.TestData
	store(t, p, sortedElements)

	seen := []storage.Element{}
	err := p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		seen = append(seen, storage.Element{Key: key, Value: value})
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, sortedElements, seen, "mapped elements")

	count := 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if 2 == count {
			return fault.InvalidAmount
		}
		return nil
	})
	assert.Equal(t, fault.InvalidAmount, err, "map error not returned")
	assert.Equal(t, 2, count, "map did not stop")
}
