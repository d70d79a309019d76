// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/rpc/slot"
	"github.com/bitmark-inc/slotd/sale"
)

// Buy - purchase slots from a round
func (client *Client) Buy(roundIndex uint64, amount uint64) (*sale.BuyResult, error) {

	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	args := slot.BuyArguments{
		RoundIndex: roundIndex,
		Amount:     amount,
	}
	args.Sign(key, "Slot.Buy", time.Now(), args.RoundIndex, args.Amount)

	client.printJson("Buy Request", args)

	reply := &sale.BuyResult{}
	err = client.client.Call("Slot.Buy", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Buy Reply", reply)

	return reply, nil
}

// Claim - collect the payout for settled slots
func (client *Client) Claim() (*sale.ClaimResult, error) {

	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	args := slot.ClaimArguments{}
	args.Sign(key, "Slot.Claim", time.Now())

	client.printJson("Claim Request", args)

	reply := &sale.ClaimResult{}
	err = client.client.Call("Slot.Claim", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Claim Reply", reply)

	return reply, nil
}

// GetAccount - settlement ledger of an owner
func (client *Client) GetAccount(owner *account.Account) (*slot.AccountReply, error) {

	args := slot.AccountArguments{
		Owner: owner,
	}

	client.printJson("Account Request", args)

	reply := &slot.AccountReply{}
	err := client.client.Call("Slot.Account", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Account Reply", reply)

	return reply, nil
}

// ListAccounts - one page of settlement ledgers, after may be nil for the first page
func (client *Client) ListAccounts(after *account.Account, count int) (*slot.ListReply, error) {

	args := slot.ListArguments{
		After: after,
		Count: count,
	}

	client.printJson("List Request", args)

	reply := &slot.ListReply{}
	err := client.client.Call("Slot.List", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}
