// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - caller identities
//
// An account is an ed25519 public key tagged with its network (live
// or test).  The text form is Base58 of:
//
//   key variant (varint) ++ public key ++ SHA3-256(variant ++ key)[:4]
//
// where the key variant holds the algorithm in bits 4 and up, bit 0
// set for a public key and bit 1 set for the test network.
package account
