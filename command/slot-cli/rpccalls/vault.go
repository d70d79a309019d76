// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/rpc/vault"
	"github.com/bitmark-inc/slotd/sale"
)

// Withdraw - move value from the vault to the owner
func (client *Client) Withdraw(amount uint64) (*sale.WithdrawResult, error) {

	key, err := client.signer()
	if nil != err {
		return nil, err
	}

	args := vault.WithdrawArguments{
		Amount: amount,
	}
	args.Sign(key, "Vault.Withdraw", time.Now(), args.Amount)

	client.printJson("Withdraw Request", args)

	reply := &sale.WithdrawResult{}
	err = client.client.Call("Vault.Withdraw", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Withdraw Reply", reply)

	return reply, nil
}

// Deposit - credit an account, only accepted by test chains
func (client *Client) Deposit(owner *account.Account, amount uint64) (*vault.BalanceReply, error) {

	args := vault.DepositArguments{
		Owner:  owner,
		Amount: amount,
	}

	client.printJson("Deposit Request", args)

	reply := &vault.BalanceReply{}
	err := client.client.Call("Vault.Deposit", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Deposit Reply", reply)

	return reply, nil
}

// GetBalance - value held by an owner, nil owner reads the vault
func (client *Client) GetBalance(owner *account.Account) (*vault.BalanceReply, error) {

	args := vault.BalanceArguments{
		Owner: owner,
	}

	client.printJson("Balance Request", args)

	reply := &vault.BalanceReply{}
	err := client.client.Call("Vault.Balance", args, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}

// GetSolvency - vault balance against outstanding payouts
func (client *Client) GetSolvency() (*sale.SolvencyReport, error) {

	reply := &sale.SolvencyReport{}
	err := client.client.Call("Vault.Solvency", vault.SolvencyArguments{}, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Solvency Reply", reply)

	return reply, nil
}
