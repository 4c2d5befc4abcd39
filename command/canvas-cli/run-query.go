// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/message"
)

type heightReply struct {
	Height uint64 `json:"height"`
}

func runAdvance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	height, err := m.host.Advance(c.Uint64("blocks"))
	if nil != err {
		return err
	}
	return printJson(m.w, heightReply{Height: height})
}

func runHeight(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	height, err := m.host.Height()
	if nil != err {
		return err
	}
	return printJson(m.w, heightReply{Height: height})
}

func runConfig(c *cli.Context) error {
	return query(c, &message.QueryMsg{GetConfig: &message.Empty{}})
}

func runDimensions(c *cli.Context) error {
	return query(c, &message.QueryMsg{GetDimensions: &message.Empty{}})
}

func runContractInfo(c *cli.Context) error {
	return query(c, &message.QueryMsg{GetContractInfo: &message.Empty{}})
}

func runCooldown(c *cli.Context) error {
	address := c.String("address")
	if "" == address {
		return ErrMissingAddress
	}
	return query(c, &message.QueryMsg{GetCooldown: &message.GetCooldown{Address: address}})
}

func runChunk(c *cli.Context) error {
	return query(c, &message.QueryMsg{
		GetChunk: &message.GetChunk{
			X: c.Uint64("x"),
			Y: c.Uint64("y"),
		},
	})
}

type chunksReply struct {
	Chunks []grid.Coordinate `json:"chunks"`
	Next   *grid.Coordinate  `json:"next"`
}

func runChunks(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count < 0 {
		return fault.InvalidCount
	}

	if 0 == count {
		coordinates, err := m.host.Materialised()
		if nil != err {
			return err
		}
		return printJson(m.w, coordinates)
	}

	start := grid.Coordinate{
		X: c.Uint64("start-x"),
		Y: c.Uint64("start-y"),
	}
	coordinates, err := m.host.MaterialisedPage(start, count)
	if nil != err {
		return err
	}

	reply := chunksReply{
		Chunks: coordinates,
	}
	if len(coordinates) == count {
		if next, ok := coordinates[count-1].Successor(); ok {
			reply.Next = &next
		}
	}
	return printJson(m.w, reply)
}

func query(c *cli.Context, msg *message.QueryMsg) error {

	m := c.App.Metadata["config"].(*metadata)

	result, err := m.host.Query(context.Background(), msg)
	if nil != err {
		return err
	}
	return printJson(m.w, result)
}
