// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/counter"
	"github.com/bitmark-inc/slotd/rpc/node"
	"github.com/bitmark-inc/slotd/rpc/round"
	"github.com/bitmark-inc/slotd/rpc/slot"
	"github.com/bitmark-inc/slotd/rpc/vault"
	"github.com/bitmark-inc/slotd/sale"
)

// Create - an RPC server with every handler registered
func Create(log *logger.L, s sale.Sale, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(round.New(log, s))
	_ = server.Register(slot.New(log, s))
	_ = server.Register(vault.New(log, s))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
