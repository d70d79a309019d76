// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"crypto/tls"
	"io/ioutil"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/balance"
	"github.com/bitmark-inc/slotd/counter"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/round"
	"github.com/bitmark-inc/slotd/rpc/certificate"
	"github.com/bitmark-inc/slotd/rpc/fixtures"
	"github.com/bitmark-inc/slotd/rpc/listeners"
	rpcround "github.com/bitmark-inc/slotd/rpc/round"
	"github.com/bitmark-inc/slotd/rpc/server"
	"github.com/bitmark-inc/slotd/rpc/slot"
	"github.com/bitmark-inc/slotd/rpc/vault"
	"github.com/bitmark-inc/slotd/sale"
	"github.com/bitmark-inc/slotd/storage"
)

// start a TLS JSON-RPC service over a real engine and return a client
func setup(t *testing.T) (*rpc.Client, func()) {
	fixtures.SetupTestLogger()

	dir, err := ioutil.TempDir("", "server-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	engine := sale.New(log, balance.New(), sale.Options{Testing: true})

	cert, key, err := fixtures.Certificate()
	if nil != err {
		t.Fatalf("certificate error: %s", err)
	}
	tlsConfig, fin, err := certificate.Get(log, "test", cert, key)
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}

	count := counter.Counter(0)
	configuration := listeners.RPCConfiguration{
		MaximumConnections: 2,
		Bandwidth:          10000000,
		Listen:             []string{"127.0.0.1:0"},
	}
	l, err := listeners.NewRPC(&configuration, log, &count, server.Create(log, engine, "test", &count), tlsConfig, fin)
	if nil != err {
		t.Fatalf("listener error: %s", err)
	}
	if err := l.Serve(); nil != err {
		t.Fatalf("serve error: %s", err)
	}

	conn, err := tls.Dial("tcp", l.Addrs()[0].String(), &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)

	return client, func() {
		client.Close()
		l.Close()
		storage.Finalise()
		os.RemoveAll(dir)
		fixtures.TeardownTestLogger()
	}
}

func TestSaleOverRPC(t *testing.T) {
	client, teardown := setup(t)
	defer teardown()

	owner := fixtures.Key()
	buyer := fixtures.Key()

	initialise := rpcround.InitialiseArguments{Price: 100, Fee: 50}
	initialise.Sign(owner, "Round.Initialise", time.Now(), initialise.Price, initialise.Fee)
	var global rpcround.GlobalReply
	err := client.Call("Round.Initialise", &initialise, &global)
	assert.Nil(t, err, "initialise")
	assert.True(t, owner.Account().Equal(global.Global.Owner), "owner")

	create := rpcround.CreateArguments{RoundIndex: 1}
	create.Sign(owner, "Round.Create", time.Now(), create.RoundIndex)
	var created rpcround.CreateReply
	err = client.Call("Round.Create", &create, &created)
	assert.Nil(t, err, "create round")
	assert.Equal(t, &round.Ledger{Index: 1, Capacity: 2}, created.Ledger, "ledger")

	var deposited vault.BalanceReply
	err = client.Call("Vault.Deposit", &vault.DepositArguments{Owner: buyer.Account(), Amount: 1000}, &deposited)
	assert.Nil(t, err, "deposit")
	assert.Equal(t, uint64(1000), deposited.Balance, "deposited balance")

	buy := slot.BuyArguments{RoundIndex: 1, Amount: 5}
	buy.Sign(buyer, "Slot.Buy", time.Now(), buy.RoundIndex, buy.Amount)
	var bought sale.BuyResult
	err = client.Call("Slot.Buy", &buy, &bought)
	assert.Nil(t, err, "buy")
	assert.Equal(t, uint64(2), bought.Fill, "fill")
	assert.Equal(t, round.RolledOver, bought.Transition, "transition")
	assert.Equal(t, uint64(190), bought.VaultShare, "vault share")
	assert.Equal(t, uint64(10), bought.FeeShare, "fee share")

	// a freshly signed request for the closed round is refused
	buy.Sign(buyer, "Slot.Buy", time.Now(), buy.RoundIndex, buy.Amount)
	err = client.Call("Slot.Buy", &buy, &bought)
	assert.Equal(t, fault.InvalidRoundIndex.Error(), errorText(err), "stale round")

	var vaultBalance vault.BalanceReply
	err = client.Call("Vault.Balance", &vault.BalanceArguments{}, &vaultBalance)
	assert.Nil(t, err, "vault balance")
	assert.Equal(t, uint64(190), vaultBalance.Balance, "vault balance")

	claim := slot.ClaimArguments{}
	claim.Sign(buyer, "Slot.Claim", time.Now())
	var claimed sale.ClaimResult
	err = client.Call("Slot.Claim", &claim, &claimed)
	assert.Equal(t, fault.InsufficientFunds.Error(), errorText(err), "claim from vault with sale proceeds only")

	var solvency sale.SolvencyReport
	err = client.Call("Vault.Solvency", &vault.SolvencyArguments{}, &solvency)
	assert.Nil(t, err, "solvency")
	assert.Equal(t, sale.SolvencyReport{VaultBalance: 190, Outstanding: 390, Accounts: 1, Solvent: false}, solvency, "report")

	err = client.Call("Vault.Deposit", &vault.DepositArguments{Owner: vaultBalance.Owner, Amount: 200}, &deposited)
	assert.Nil(t, err, "vault deposit")

	claim.Sign(buyer, "Slot.Claim", time.Now())
	err = client.Call("Slot.Claim", &claim, &claimed)
	assert.Nil(t, err, "claim")
	assert.Equal(t, uint64(2), claimed.Slots, "slots")
	assert.Equal(t, uint64(390), claimed.Payout, "payout")

	var info rpcround.InfoReply
	err = client.Call("Round.Info", &rpcround.InfoArguments{}, &info)
	assert.Nil(t, err, "info")
	assert.Equal(t, uint64(2), info.Global.RoundCounter, "round counter")
	assert.Equal(t, &round.Ledger{Index: 2, Capacity: 4}, info.Ledger, "current round")
}

func TestWithdrawByBuyerOverRPC(t *testing.T) {
	client, teardown := setup(t)
	defer teardown()

	owner := fixtures.Key()
	initialise := rpcround.InitialiseArguments{Price: 10, Fee: 0}
	initialise.Sign(owner, "Round.Initialise", time.Now(), initialise.Price, initialise.Fee)
	var global rpcround.GlobalReply
	assert.Nil(t, client.Call("Round.Initialise", &initialise, &global), "initialise")

	withdraw := vault.WithdrawArguments{Amount: 1}
	withdraw.Sign(fixtures.Key(), "Vault.Withdraw", time.Now(), withdraw.Amount)
	var result sale.WithdrawResult
	err := client.Call("Vault.Withdraw", &withdraw, &result)
	assert.Equal(t, fault.NotAllowedOwner.Error(), errorText(err), "non owner withdraw")
}

func TestReplayedBuyOverRPC(t *testing.T) {
	client, teardown := setup(t)
	defer teardown()

	owner := fixtures.Key()
	buyer := fixtures.Key()

	initialise := rpcround.InitialiseArguments{Price: 100, Fee: 50}
	initialise.Sign(owner, "Round.Initialise", time.Now(), initialise.Price, initialise.Fee)
	var global rpcround.GlobalReply
	assert.Nil(t, client.Call("Round.Initialise", &initialise, &global), "initialise")

	// the owner cannot replay a signed round creation either
	create := rpcround.CreateArguments{RoundIndex: 1}
	create.Sign(owner, "Round.Create", time.Now(), create.RoundIndex)
	var created rpcround.CreateReply
	assert.Nil(t, client.Call("Round.Create", &create, &created), "create round")
	err := client.Call("Round.Create", &create, &created)
	assert.Equal(t, fault.RequestAlreadyUsed.Error(), errorText(err), "replayed create")

	var deposited vault.BalanceReply
	err = client.Call("Vault.Deposit", &vault.DepositArguments{Owner: buyer.Account(), Amount: 1000}, &deposited)
	assert.Nil(t, err, "deposit")

	buy := slot.BuyArguments{RoundIndex: 1, Amount: 1}
	buy.Sign(buyer, "Slot.Buy", time.Now(), buy.RoundIndex, buy.Amount)
	var bought sale.BuyResult
	err = client.Call("Slot.Buy", &buy, &bought)
	assert.Nil(t, err, "buy")
	assert.Equal(t, uint64(1), bought.Fill, "fill")

	err = client.Call("Slot.Buy", &buy, &bought)
	assert.Equal(t, fault.RequestAlreadyUsed.Error(), errorText(err), "replayed buy")

	var buyerBalance vault.BalanceReply
	err = client.Call("Vault.Balance", &vault.BalanceArguments{Owner: buyer.Account()}, &buyerBalance)
	assert.Nil(t, err, "buyer balance")
	assert.Equal(t, uint64(900), buyerBalance.Balance, "buyer charged once")

	var info rpcround.InfoReply
	err = client.Call("Round.Info", &rpcround.InfoArguments{}, &info)
	assert.Nil(t, err, "info")
	assert.Equal(t, uint64(1), info.Ledger.Filled, "slots sold")
}

// errors cross the connection as text
func errorText(err error) string {
	if nil == err {
		return ""
	}
	return err.Error()
}
