// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type cacheData struct {
	op    dbOperation
	value []byte
}

// uncommitted writes of one transaction
//
// entries never expire, the overlay is dropped with its transaction
type overlay struct {
	cache *cache.Cache
}

func newOverlay() *overlay {
	return &overlay{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// get returns (value, deleted, found)
func (o *overlay) get(key []byte) ([]byte, bool, bool) {
	obj, found := o.cache.Get(string(key))
	if !found {
		return nil, false, false
	}
	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true, true
	}
	return data.value, false, true
}

func (o *overlay) set(op dbOperation, key []byte, value []byte) {
	o.cache.Set(string(key), cacheData{op: op, value: value}, cache.NoExpiration)
}

func (o *overlay) count() int {
	return o.cache.ItemCount()
}

func (o *overlay) clear() {
	o.cache.Flush()
}
