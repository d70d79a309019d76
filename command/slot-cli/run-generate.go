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

type generatedKey struct {
	Account    *account.Account `json:"account"`
	PrivateKey string           `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "testnet: %t\n", key.Test)
	}

	printJson(m.w, generatedKey{
		Account:    key.Account(),
		PrivateKey: key.String(),
	})
	return nil
}
