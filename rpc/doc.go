// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - accept signed JSON RPC requests over TLS and pass
// them to the sale engine
//
// standard golang RPC clients using the jsonrpc codec can call
// the Round, Slot, Vault and Node services
package rpc
