// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInitialise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	price := c.Uint64("price")
	if 0 == price {
		return fmt.Errorf("invalid price: %d", price)
	}
	fee := c.Uint64("fee")

	if m.verbose {
		fmt.Fprintf(m.e, "price: %d\n", price)
		fmt.Fprintf(m.e, "fee: %d\n", fee)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Initialise(price, fee)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
