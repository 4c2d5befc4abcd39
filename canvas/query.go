// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas

import (
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/pixel"
)

// GetConfig - the current administrative state
func (c *Canvas) GetConfig() (*Config, error) {
	return c.loadConfig()
}

// GetDimensions - extent in chunks
func (c *Canvas) GetDimensions() (*grid.Dimensions, error) {
	return c.loadDimensions()
}

// GetCooldown - next eligible height for an address, zero if never drawn
func (c *Canvas) GetCooldown(address string) (uint64, error) {
	address, err := c.validator.ValidateAddress(address)
	if nil != err {
		return 0, err
	}
	return c.cooldowns.Get(address)
}

// GetChunk - stored chunk or the all white default
//
// coordinates are not checked against the dimensions
func (c *Canvas) GetChunk(chunkX uint64, chunkY uint64) (*pixel.Chunk, error) {
	return c.chunks.Load(chunkX, chunkY)
}

// GetContractInfo - name and version recorded at instantiation
func (c *Canvas) GetContractInfo() (*ContractInfo, error) {
	info := &ContractInfo{}
	found, err := getRecord(c.contract, contractKey, info)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.NotInstantiated
	}
	return info, nil
}

// MaterialisedPage - up to count drawn chunk coordinates from start on
func (c *Canvas) MaterialisedPage(start grid.Coordinate, count int) ([]grid.Coordinate, error) {
	return c.chunks.Page(start, count)
}

// Materialised - coordinates of every chunk drawn on so far
func (c *Canvas) Materialised() ([]grid.Coordinate, error) {
	return c.chunks.Materialised()
}
