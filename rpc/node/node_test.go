// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/chain"
	"github.com/bitmark-inc/slotd/counter"
	"github.com/bitmark-inc/slotd/mode"
	"github.com/bitmark-inc/slotd/rpc/fixtures"
	"github.com/bitmark-inc/slotd/rpc/node"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_ = mode.Initialise(chain.Testing)
	defer mode.Finalise()

	count := counter.Counter(3)
	n := node.New(logger.New(fixtures.LogCategory), time.Now().Add(-time.Hour), "1.2.3", &count)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, "Normal", reply.Mode, "wrong mode")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}
