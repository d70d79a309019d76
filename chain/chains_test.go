// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/chain"
)

func TestValid(t *testing.T) {
	assert.True(t, chain.Valid(chain.Slot), "live chain")
	assert.True(t, chain.Valid(chain.Local), "local chain")
	assert.False(t, chain.Valid("bitmark"), "unknown chain accepted")

	assert.False(t, chain.IsTesting(chain.Slot), "live chain is testing")
	assert.True(t, chain.IsTesting(chain.Testing), "testing chain")
	assert.True(t, chain.IsTesting(chain.Local), "local chain")
}
