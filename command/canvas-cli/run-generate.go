// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/canvasd/account"
)

type generateReply struct {
	Account    string `json:"account"`
	PrivateKey string `json:"private_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, privateKey, err := account.Generate(m.testnet)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account:    a.String(),
		PrivateKey: hex.EncodeToString(privateKey),
	})
}
