// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/slotd/rpc/node"
)

// GetNodeInfo - daemon status
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {

	reply := &node.InfoReply{}
	err := client.client.Call("Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Node Info Reply", reply)

	return reply, nil
}
