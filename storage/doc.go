// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a single LevelDB database split into a series of
// tables.  Each table is defined by a prefix byte that is obtained
// from the prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. account  = account bytes (key type varint ++ public key)
// 4. amount   = big endian uint64 (8 bytes)
// 5. record   = record type varint ++ varint / length prefixed fields
//
// Pools:
//
//   G ++ "global"   - protocol wide state
//                     data: record
//   R ++ "current"  - the active round ledger
//                     data: record
//   U ++ account    - per caller settlement ledger
//                     data: record
//   B ++ account    - value held by an account
//                     data: amount
//   S ++ account    - newest signed request accepted from an account
//                     data: amount (nanosecond timestamp)
//   Z ++ key        - test data
//
// All writes go through a Transaction: writes are collected in a
// leveldb.Batch and become visible to other readers only on Commit.
// Reads inside a transaction see its own uncommitted writes.
package storage
