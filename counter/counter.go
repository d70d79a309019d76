// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - count of in-use resources, safe for concurrent use
type Counter uint64

// Acquire - take one unit if fewer than maximum are in use
//
// returns false, leaving the count unchanged, when the limit is reached
func (c *Counter) Acquire(maximum uint64) bool {
	if atomic.AddUint64((*uint64)(c), 1) <= maximum {
		return true
	}
	atomic.AddUint64((*uint64)(c), ^uint64(0))
	return false
}

// Release - return a unit taken by Acquire
func (c *Counter) Release() {
	atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
