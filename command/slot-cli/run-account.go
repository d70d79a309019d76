// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := m.requiredAccount(c.String("owner"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetAccount(owner)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
