// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sale - the round sale engine
//
// every operation runs in a single storage transaction holding locks
// on each record it reads for update; any error aborts the
// transaction so nothing is persisted
//
// callers are assumed to be authenticated before reaching the engine
package sale
