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

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	var after *account.Account
	if s := c.String("after"); "" != s {
		a, err := m.account(s)
		if nil != err {
			return err
		}
		after = a
	}

	if m.verbose {
		fmt.Fprintf(m.e, "after: %v\n", after)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.ListAccounts(after, count)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
