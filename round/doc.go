// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package round - the protocol wide state and the round ledger
//
// a round holds 2^index slots; the purchase that fills a round rolls
// the ledger over in place to the next index with zero slots filled
package round
