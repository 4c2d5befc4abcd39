// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/pixel"
)

// Canvas - the operations messages are dispatched to
type Canvas interface {
	Instantiate(canvas.Env, string, uint64, *uint64, grid.Dimensions) (*canvas.Response, error)
	Draw(canvas.Env, uint64, uint64, uint64, uint64, pixel.Color) (*canvas.Response, error)
	UpdateAdmin(canvas.Env, string) (*canvas.Response, error)
	UpdateCooldown(canvas.Env, uint64) (*canvas.Response, error)
	UpdateEndHeight(canvas.Env, *uint64) (*canvas.Response, error)
	GetConfig() (*canvas.Config, error)
	GetDimensions() (*grid.Dimensions, error)
	GetCooldown(string) (uint64, error)
	GetChunk(uint64, uint64) (*pixel.Chunk, error)
	GetContractInfo() (*canvas.ContractInfo, error)
}

// Instantiate - apply an instantiate message
func Instantiate(c Canvas, env canvas.Env, msg *InstantiateMsg) (*canvas.Response, error) {
	if nil == msg {
		return nil, fault.InvalidMessage
	}
	dimensions := grid.Dimensions{
		Width:  msg.Width,
		Height: msg.Height,
	}
	return c.Instantiate(env, msg.AdminAddress, msg.Cooldown, msg.EndHeight, dimensions)
}

// Execute - apply an execute message
func Execute(c Canvas, env canvas.Env, msg *ExecuteMsg) (*canvas.Response, error) {
	switch {
	case nil == msg:
		return nil, fault.InvalidMessage
	case nil != msg.Draw:
		d := msg.Draw
		return c.Draw(env, d.ChunkX, d.ChunkY, d.X, d.Y, d.Color)
	case nil != msg.UpdateAdmin:
		return c.UpdateAdmin(env, msg.UpdateAdmin.NewAdminAddress)
	case nil != msg.UpdateCooldown:
		return c.UpdateCooldown(env, msg.UpdateCooldown.NewCooldown)
	case nil != msg.UpdateEndHeight:
		return c.UpdateEndHeight(env, msg.UpdateEndHeight.NewEndHeight)
	}
	return nil, fault.InvalidMessage
}

// Query - run a query, the result is ready for JSON encoding
func Query(c Canvas, msg *QueryMsg) (interface{}, error) {
	switch {
	case nil == msg:
		return nil, fault.InvalidMessage

	case nil != msg.GetConfig:
		return c.GetConfig()

	case nil != msg.GetDimensions:
		return c.GetDimensions()

	case nil != msg.GetCooldown:
		n, err := c.GetCooldown(msg.GetCooldown.Address)
		if nil != err {
			return nil, err
		}
		return &CooldownResponse{CurrentCooldown: n}, nil

	case nil != msg.GetChunk:
		chunk, err := c.GetChunk(msg.GetChunk.X, msg.GetChunk.Y)
		if nil != err {
			return nil, err
		}
		return &ChunkResponse{Grid: *chunk}, nil

	case nil != msg.GetContractInfo:
		return c.GetContractInfo()
	}
	return nil, fault.InvalidMessage
}
