// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runNodeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
