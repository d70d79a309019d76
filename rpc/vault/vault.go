// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vault

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/rpc/auth"
	"github.com/bitmark-inc/slotd/rpc/ratelimit"
	"github.com/bitmark-inc/slotd/sale"
)

const (
	rateLimitVault = 100
	rateBurstVault = 50
)

// Vault - type for the RPC
type Vault struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Sale    sale.Sale
}

// New - create the vault handler
func New(log *logger.L, s sale.Sale) *Vault {
	return &Vault{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitVault, rateBurstVault),
		Sale:    s,
	}
}

// WithdrawArguments - arguments for RPC
type WithdrawArguments struct {
	auth.Request
	Amount uint64 `json:"amount,string"`
}

// Withdraw - move value from the vault to the owner
func (v *Vault) Withdraw(arguments *WithdrawArguments, reply *sale.WithdrawResult) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	err := arguments.Verify("Vault.Withdraw", time.Now(), arguments.Amount)
	if nil != err {
		return err
	}

	v.Log.Infof("Vault.Withdraw: caller: %s  amount: %d", arguments.Caller, arguments.Amount)

	result, err := v.Sale.Withdraw(arguments.Caller, arguments.Sequence(), arguments.Amount)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// BalanceArguments - arguments for RPC, a missing owner reads the vault
type BalanceArguments struct {
	Owner *account.Account `json:"owner"`
}

// BalanceReply - result of balance RPC
type BalanceReply struct {
	Owner   *account.Account `json:"owner"`
	Balance uint64           `json:"balance"`
}

// Balance - value held by an account
func (v *Vault) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	owner := v.Sale.Vault()
	if nil != arguments && nil != arguments.Owner && nil != arguments.Owner.AccountInterface {
		owner = arguments.Owner
	}

	reply.Owner = owner
	reply.Balance = v.Sale.Balance(owner)
	return nil
}

// DepositArguments - arguments for RPC
type DepositArguments struct {
	Owner  *account.Account `json:"owner"`
	Amount uint64           `json:"amount,string"`
}

// Deposit - credit an account on a test chain
func (v *Vault) Deposit(arguments *DepositArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}

	v.Log.Infof("Vault.Deposit: owner: %s  amount: %d", arguments.Owner, arguments.Amount)

	total, err := v.Sale.Deposit(arguments.Owner, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Owner = arguments.Owner
	reply.Balance = total
	return nil
}

// SolvencyArguments - empty arguments for solvency request
type SolvencyArguments struct{}

// Solvency - compare the vault balance with what buyers are owed
func (v *Vault) Solvency(_ *SolvencyArguments, reply *sale.SolvencyReport) error {

	if err := ratelimit.Limit(v.Limiter); nil != err {
		return err
	}

	report, err := v.Sale.Solvency()
	if nil != err {
		return err
	}
	*reply = *report
	return nil
}
