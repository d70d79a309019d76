// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - per caller ledger of purchased slots
//
// slots bought in the caller's latest round are pending until a newer
// round exists; older purchases are settled and can be claimed at once
package settlement
