// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/slotd/account"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	// blank owner reads the vault
	var owner *account.Account
	if s := c.String("owner"); "" != s {
		a, err := m.account(s)
		if nil != err {
			return err
		}
		owner = a
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %v\n", owner)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetBalance(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
