// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package slot

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/rpc/auth"
	"github.com/bitmark-inc/slotd/rpc/ratelimit"
	"github.com/bitmark-inc/slotd/sale"
	"github.com/bitmark-inc/slotd/settlement"
)

// Slot
// ----

// Slot - type for the RPC
type Slot struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Sale    sale.Sale
}

const (
	MaximumListCount = 100
	rateLimitSlot    = 200
	rateBurstSlot    = 100
)

// New - create the slot handler
func New(log *logger.L, s sale.Sale) *Slot {
	return &Slot{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitSlot, rateBurstSlot),
		Sale:    s,
	}
}

// Buy
// ---

// BuyArguments - arguments for RPC
type BuyArguments struct {
	auth.Request
	RoundIndex uint64 `json:"roundIndex,string"`
	Amount     uint64 `json:"amount,string"`
}

// Buy - purchase slots from the current round
func (s *Slot) Buy(arguments *BuyArguments, reply *sale.BuyResult) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	err := arguments.Verify("Slot.Buy", time.Now(), arguments.RoundIndex, arguments.Amount)
	if nil != err {
		return err
	}

	s.Log.Infof("Slot.Buy: caller: %s  round: %d  amount: %d", arguments.Caller, arguments.RoundIndex, arguments.Amount)

	result, err := s.Sale.Buy(arguments.Caller, arguments.Sequence(), arguments.RoundIndex, arguments.Amount)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Claim
// -----

// ClaimArguments - arguments for RPC
type ClaimArguments struct {
	auth.Request
}

// Claim - collect the payout for settled slots
func (s *Slot) Claim(arguments *ClaimArguments, reply *sale.ClaimResult) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	err := arguments.Verify("Slot.Claim", time.Now())
	if nil != err {
		return err
	}

	s.Log.Infof("Slot.Claim: caller: %s", arguments.Caller)

	result, err := s.Sale.Claim(arguments.Caller, arguments.Sequence())
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// Account
// -------

// AccountArguments - arguments for RPC
type AccountArguments struct {
	Owner *account.Account `json:"owner"`
}

// AccountReply - settlement ledger and what could be claimed now
type AccountReply struct {
	Account     *settlement.UserAccount `json:"account"`
	Payable     uint64                  `json:"payable"`   // slots a claim would pay now
	Claimable   uint64                  `json:"claimable"` // value a claim would pay now
	Outstanding uint64                  `json:"outstanding"`
}

// Account - read the settlement ledger of an account
func (s *Slot) Account(arguments *AccountArguments, reply *AccountReply) error {

	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.MissingParameters
	}

	position, err := s.Sale.Position(arguments.Owner)
	if nil != err {
		return err
	}

	reply.Account = position.Account
	reply.Payable = position.Payable
	reply.Claimable = position.Claimable
	reply.Outstanding = position.Outstanding
	return nil
}

// List
// ----

// ListArguments - arguments for RPC
type ListArguments struct {
	After *account.Account `json:"after"` // last owner of the previous page
	Count int              `json:"count"`
}

// ListReply - a page of settlement ledgers
type ListReply struct {
	Accounts []settlement.Entry `json:"accounts"`
}

// List - page through all settlement ledgers
func (s *Slot) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(s.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	entries, err := s.Sale.Accounts(arguments.After, arguments.Count)
	if nil != err {
		return err
	}
	reply.Accounts = entries
	return nil
}
