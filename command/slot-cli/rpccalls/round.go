// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	rpcround "github.com/bitmark-inc/slotd/rpc/round"
)

// Initialise - make the signing key the owner of a new sale
func (client *Client) Initialise(price uint64, fee uint64) (*rpcround.GlobalReply, error) {

	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	args := rpcround.InitialiseArguments{
		Price: price,
		Fee:   fee,
	}
	args.Sign(key, "Round.Initialise", time.Now(), args.Price, args.Fee)

	client.printJson("Initialise Request", args)

	reply := &rpcround.GlobalReply{}
	err = client.client.Call("Round.Initialise", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Initialise Reply", reply)

	return reply, nil
}

// UpdateFee - change the per-mille fee
func (client *Client) UpdateFee(fee uint64) (*rpcround.GlobalReply, error) {

	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	args := rpcround.UpdateFeeArguments{
		Fee: fee,
	}
	args.Sign(key, "Round.UpdateFee", time.Now(), args.Fee)

	client.printJson("UpdateFee Request", args)

	reply := &rpcround.GlobalReply{}
	err = client.client.Call("Round.UpdateFee", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("UpdateFee Reply", reply)

	return reply, nil
}

// CreateRound - open the round that follows the round counter
func (client *Client) CreateRound(roundIndex uint64) (*rpcround.CreateReply, error) {

	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	args := rpcround.CreateArguments{
		RoundIndex: roundIndex,
	}
	args.Sign(key, "Round.Create", time.Now(), args.RoundIndex)

	client.printJson("CreateRound Request", args)

	reply := &rpcround.CreateReply{}
	err = client.client.Call("Round.Create", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("CreateRound Reply", reply)

	return reply, nil
}

// GetInfo - protocol state and current round
func (client *Client) GetInfo() (*rpcround.InfoReply, error) {

	reply := &rpcround.InfoReply{}
	err := client.client.Call("Round.Info", rpcround.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return reply, nil
}
