// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for events produced by
// committed sale operations
//
// producers never block: when a queue is full the message is
// discarded and counted
package messagebus
