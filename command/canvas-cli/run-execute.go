// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/message"
	"github.com/bitmark-inc/canvasd/pixel"
)

var (
	senderFlag = cli.StringFlag{
		Name:  "sender, s",
		Usage: "*calling `ACCOUNT`",
	}
	endHeightFlag = cli.Uint64Flag{
		Name:  "end-height, e",
		Usage: " last height at which drawing is allowed `HEIGHT`, omit for no limit",
	}
)

type executeReply struct {
	Height     uint64             `json:"height"`
	Attributes []canvas.Attribute `json:"attributes"`
}

func getSender(c *cli.Context) (string, error) {
	sender := c.String("sender")
	if "" == sender {
		return "", ErrMissingSender
	}
	return sender, nil
}

// nil when the flag is absent
func getEndHeight(c *cli.Context) *uint64 {
	if !c.IsSet("end-height") {
		return nil
	}
	end := c.Uint64("end-height")
	return &end
}

func runInstantiate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := getSender(c)
	if nil != err {
		return err
	}

	msg := &message.InstantiateMsg{
		AdminAddress: c.String("admin"),
		Cooldown:     c.Uint64("cooldown"),
		EndHeight:    getEndHeight(c),
		Width:        c.Uint64("width"),
		Height:       c.Uint64("height"),
	}
	if m.verbose {
		fmt.Fprintf(m.e, "instantiate: %+v\n", msg)
	}

	r, err := m.host.Instantiate(context.Background(), sender, msg)
	if nil != err {
		return err
	}
	return printResponse(m, r)
}

func runDraw(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := getSender(c)
	if nil != err {
		return err
	}

	color, err := pixel.ColorFromString(c.String("color"))
	if nil != err {
		return err
	}

	return execute(m, sender, &message.ExecuteMsg{
		Draw: &message.Draw{
			ChunkX: c.Uint64("chunk-x"),
			ChunkY: c.Uint64("chunk-y"),
			X:      c.Uint64("x"),
			Y:      c.Uint64("y"),
			Color:  color,
		},
	})
}

func runUpdateAdmin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := getSender(c)
	if nil != err {
		return err
	}

	return execute(m, sender, &message.ExecuteMsg{
		UpdateAdmin: &message.UpdateAdmin{
			NewAdminAddress: c.String("admin"),
		},
	})
}

func runUpdateCooldown(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := getSender(c)
	if nil != err {
		return err
	}

	return execute(m, sender, &message.ExecuteMsg{
		UpdateCooldown: &message.UpdateCooldown{
			NewCooldown: c.Uint64("cooldown"),
		},
	})
}

func runUpdateEndHeight(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	sender, err := getSender(c)
	if nil != err {
		return err
	}

	return execute(m, sender, &message.ExecuteMsg{
		UpdateEndHeight: &message.UpdateEndHeight{
			NewEndHeight: getEndHeight(c),
		},
	})
}

func execute(m *metadata, sender string, msg *message.ExecuteMsg) error {
	if m.verbose {
		fmt.Fprintf(m.e, "execute: %s  sender: %s\n", msg.Name(), sender)
	}

	r, err := m.host.Execute(context.Background(), sender, msg)
	if nil != err {
		return err
	}
	return printResponse(m, r)
}

func printResponse(m *metadata, r *canvas.Response) error {
	height, err := m.host.Height()
	if nil != err {
		return err
	}
	return printJson(m.w, executeReply{
		Height:     height,
		Attributes: r.Attributes,
	})
}
