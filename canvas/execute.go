// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas

import (
	"github.com/bitmark-inc/canvasd/cooldown"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/pixel"
	"github.com/bitmark-inc/canvasd/version"
)

// Instantiate - create the canvas state
func (c *Canvas) Instantiate(env Env, admin string, cooldownInterval uint64, endHeight *uint64, dimensions grid.Dimensions) (*Response, error) {
	found, err := c.config.Has(configKey)
	if nil != err {
		return nil, fault.Storage("has config", err)
	}
	if found {
		return nil, fault.AlreadyInstantiated
	}

	admin, err = c.validator.ValidateAddress(admin)
	if nil != err {
		return nil, err
	}

	if nil != endHeight && *endHeight <= env.Height {
		return nil, fault.InvalidEndHeight
	}

	if !dimensions.Valid() {
		return nil, fault.InvalidDimensions
	}

	config := &Config{
		Admin:     admin,
		Cooldown:  cooldownInterval,
		EndHeight: copyHeight(endHeight),
	}
	info := &ContractInfo{
		Contract: version.Name,
		Version:  version.Version,
	}

	if err := putRecord(c.config, configKey, config); nil != err {
		return nil, err
	}
	if err := putRecord(c.dimensions, dimensionsKey, &dimensions); nil != err {
		return nil, err
	}
	if err := putRecord(c.contract, contractKey, info); nil != err {
		return nil, err
	}

	c.log.Infof("instantiated: admin: %s  cooldown: %d  dimensions: %d×%d", admin, cooldownInterval, dimensions.Width, dimensions.Height)
	return newResponse("method", "instantiate"), nil
}

// Draw - paint one pixel
func (c *Canvas) Draw(env Env, chunkX uint64, chunkY uint64, x uint64, y uint64, color pixel.Color) (*Response, error) {
	// the painter is stored in the chunk record and empty means undrawn
	if "" == env.Sender || len(env.Sender) > pixel.MaxPainterLength {
		return nil, fault.InvalidAddress
	}

	config, err := c.loadConfig()
	if nil != err {
		return nil, err
	}
	dimensions, err := c.loadDimensions()
	if nil != err {
		return nil, err
	}
	next, err := c.cooldowns.Get(env.Sender)
	if nil != err {
		return nil, err
	}

	if !pixel.InChunk(x, y) || !dimensions.Contains(chunkX, chunkY) {
		return nil, fault.InvalidCoordinates
	}

	if !cooldown.Eligible(env.Height, next) {
		return nil, fault.StillOnCooldown
	}

	if nil != config.EndHeight && env.Height > *config.EndHeight {
		return nil, fault.EndHeightReached
	}

	if !color.Valid() {
		return nil, fault.InvalidColor
	}

	chunk, err := c.chunks.Load(chunkX, chunkY)
	if nil != err {
		return nil, err
	}
	chunk.Set(x, y, color, env.Sender)

	if err := c.chunks.Save(chunkX, chunkY, chunk); nil != err {
		return nil, err
	}
	if err := c.cooldowns.Set(env.Sender, cooldown.Next(env.Height, config.Cooldown)); nil != err {
		return nil, err
	}

	c.log.Debugf("draw: %s at (%d,%d)/(%d,%d) color: %s", env.Sender, chunkX, chunkY, x, y, color)
	return newResponse("action", "draw"), nil
}

// UpdateAdmin - hand the canvas to a new admin
func (c *Canvas) UpdateAdmin(env Env, newAdmin string) (*Response, error) {
	config, err := c.authorise(env)
	if nil != err {
		return nil, err
	}

	newAdmin, err = c.validator.ValidateAddress(newAdmin)
	if nil != err {
		return nil, err
	}

	config.Admin = newAdmin
	if err := putRecord(c.config, configKey, config); nil != err {
		return nil, err
	}

	c.log.Infof("admin: %s → %s", env.Sender, newAdmin)
	return newResponse("action", "update_admin"), nil
}

// UpdateCooldown - replace the interval, zero disables the limit
//
// existing cooldown entries are left as they are
func (c *Canvas) UpdateCooldown(env Env, newCooldown uint64) (*Response, error) {
	config, err := c.authorise(env)
	if nil != err {
		return nil, err
	}

	config.Cooldown = newCooldown
	if err := putRecord(c.config, configKey, config); nil != err {
		return nil, err
	}

	c.log.Infof("cooldown: %d", newCooldown)
	return newResponse("action", "update_cooldown"), nil
}

// UpdateEndHeight - set or clear the height after which drawing stops
func (c *Canvas) UpdateEndHeight(env Env, newEndHeight *uint64) (*Response, error) {
	config, err := c.authorise(env)
	if nil != err {
		return nil, err
	}

	if nil != newEndHeight && *newEndHeight <= env.Height {
		return nil, fault.InvalidEndHeight
	}

	config.EndHeight = copyHeight(newEndHeight)
	if err := putRecord(c.config, configKey, config); nil != err {
		return nil, err
	}

	if nil == newEndHeight {
		c.log.Info("end height: cleared")
	} else {
		c.log.Infof("end height: %d", *newEndHeight)
	}
	return newResponse("action", "update_end_height"), nil
}

// load the config and check the sender is the admin
func (c *Canvas) authorise(env Env) (*Config, error) {
	config, err := c.loadConfig()
	if nil != err {
		return nil, err
	}
	if env.Sender != config.Admin {
		c.log.Warnf("unauthorised: %s", env.Sender)
		return nil, fault.Unauthorized
	}
	return config, nil
}

func copyHeight(h *uint64) *uint64 {
	if nil == h {
		return nil
	}
	n := *h
	return &n
}
