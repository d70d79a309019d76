// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/slotd/account"
)

type metadata struct {
	connect     string
	fingerprint string
	key         *account.PrivateKey
	testnet     bool
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:2130"

func main() {

	app := cli.NewApp()
	app.Name = "slot-cli"
	app.Usage = "client for the slotd round based slot sale"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: " use test network keys and accounts",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: defaultConnect,
			Usage: " slotd RPC `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "fingerprint, f",
			Value: "",
			Usage: " expected SHA3-256 `HEX` of the slotd certificate",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " base58 private `KEY` for signed requests",
			EnvVar: "SLOT_CLI_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key and its account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "init",
			Usage:     "start the sale with the current key as owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: "*price of one slot `VALUE`",
				},
				cli.Uint64Flag{
					Name:  "fee, e",
					Value: 0,
					Usage: " per-mille fee `RATE`",
				},
			},
			Action: runInitialise,
		},
		{
			Name:      "fee",
			Usage:     "change the per-mille fee (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "fee, e",
					Value: 0,
					Usage: "*per-mille fee `RATE`",
				},
			},
			Action: runUpdateFee,
		},
		{
			Name:      "create-round",
			Usage:     "open the next round (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "round, r",
					Value: 0,
					Usage: "*index of the new round `ROUND`",
				},
			},
			Action: runCreateRound,
		},
		{
			Name:      "buy",
			Usage:     "buy slots from the current round",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "round, r",
					Value: 0,
					Usage: "*index of the current round `ROUND`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 1,
					Usage: " number of slots to buy `COUNT`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "claim",
			Usage:     "claim the payout for settled slots",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runClaim,
		},
		{
			Name:      "withdraw",
			Usage:     "move value from the vault to the owner (owner only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*value to withdraw `VALUE`",
				},
			},
			Action: runWithdraw,
		},
		{
			Name:      "deposit",
			Usage:     "credit an account (test networks only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " account to credit `ACCOUNT` [default: account of key]",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*value to credit `VALUE`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "info",
			Usage:     "display the sale state and current round",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "account",
			Usage:     "display the settlement ledger of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " account to read `ACCOUNT` [default: account of key]",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "list",
			Usage:     "list settlement ledgers of all buyers",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "after, A",
					Value: "",
					Usage: " start after this `ACCOUNT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of entries to display `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " account to read `ACCOUNT` [default: the vault]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "solvency",
			Usage:     "compare the vault balance with outstanding payouts",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runSolvency,
		},
		{
			Name:      "node",
			Usage:     "display slotd status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runNodeInfo,
		},
		{
			Name:   "version",
			Usage:  "display slot-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			connect:     c.GlobalString("connect"),
			fingerprint: c.GlobalString("fingerprint"),
			testnet:     c.GlobalBool("testnet"),
			verbose:     verbose,
			e:           e,
			w:           w,
		}

		if k := c.GlobalString("key"); "" != k {
			key, err := account.PrivateKeyFromBase58(k)
			if nil != err {
				return err
			}
			m.key = key
		}

		if verbose {
			fmt.Fprintf(e, "connect: %s\n", m.connect)
			fmt.Fprintf(e, "testnet: %t\n", m.testnet)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
