// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package round

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/round"
	"github.com/bitmark-inc/slotd/rpc/auth"
	"github.com/bitmark-inc/slotd/rpc/ratelimit"
	"github.com/bitmark-inc/slotd/sale"
)

const (
	rateLimitRound = 100
	rateBurstRound = 20
)

// Round - type for the RPC
type Round struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Sale    sale.Sale
}

// New - create the round handler
func New(log *logger.L, s sale.Sale) *Round {
	return &Round{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRound, rateBurstRound),
		Sale:    s,
	}
}

// GlobalReply - protocol state after a change
type GlobalReply struct {
	Global *round.GlobalConfig `json:"global"`
}

// Initialise
// ----------

// InitialiseArguments - arguments for RPC
type InitialiseArguments struct {
	auth.Request
	Price uint64 `json:"price,string"`
	Fee   uint64 `json:"fee,string"`
}

// Initialise - set up the sale with the caller as its owner
func (r *Round) Initialise(arguments *InitialiseArguments, reply *GlobalReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	err := arguments.Verify("Round.Initialise", time.Now(), arguments.Price, arguments.Fee)
	if nil != err {
		return err
	}

	r.Log.Infof("Round.Initialise: caller: %s  price: %d  fee: %d", arguments.Caller, arguments.Price, arguments.Fee)

	g, err := r.Sale.Initialise(arguments.Caller, arguments.Sequence(), arguments.Price, arguments.Fee)
	if nil != err {
		return err
	}
	reply.Global = g
	return nil
}

// UpdateFee
// ---------

// UpdateFeeArguments - arguments for RPC
type UpdateFeeArguments struct {
	auth.Request
	Fee uint64 `json:"fee,string"`
}

// UpdateFee - change the fee rate
func (r *Round) UpdateFee(arguments *UpdateFeeArguments, reply *GlobalReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	err := arguments.Verify("Round.UpdateFee", time.Now(), arguments.Fee)
	if nil != err {
		return err
	}

	r.Log.Infof("Round.UpdateFee: caller: %s  fee: %d", arguments.Caller, arguments.Fee)

	g, err := r.Sale.UpdateFee(arguments.Caller, arguments.Sequence(), arguments.Fee)
	if nil != err {
		return err
	}
	reply.Global = g
	return nil
}

// Create
// ------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	auth.Request
	RoundIndex uint64 `json:"roundIndex,string"`
}

// CreateReply - result of create round RPC
type CreateReply struct {
	Ledger *round.Ledger `json:"ledger"`
}

// Create - open the round following the round counter
func (r *Round) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	err := arguments.Verify("Round.Create", time.Now(), arguments.RoundIndex)
	if nil != err {
		return err
	}

	r.Log.Infof("Round.Create: caller: %s  round: %d", arguments.Caller, arguments.RoundIndex)

	l, err := r.Sale.CreateRound(arguments.Caller, arguments.Sequence(), arguments.RoundIndex)
	if nil != err {
		return err
	}
	reply.Ledger = l
	return nil
}

// Info
// ----

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - protocol state and current round
type InfoReply struct {
	Global *round.GlobalConfig `json:"global"`
	Ledger *round.Ledger       `json:"ledger,omitempty"`
}

// Info - read the protocol state and the current round if one is open
func (r *Round) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	g, err := r.Sale.Global()
	if nil != err {
		return err
	}

	l, err := r.Sale.Round()
	if nil != err && fault.UninitializedAccount != err {
		return err
	}

	reply.Global = g
	reply.Ledger = l
	return nil
}
