// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	roundIndex := c.Uint64("round")
	if 0 == roundIndex {
		return fmt.Errorf("invalid round: %d", roundIndex)
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("invalid amount: %d", amount)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "round: %d\n", roundIndex)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Buy(roundIndex, amount)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
