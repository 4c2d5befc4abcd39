// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/canvasd/cooldown"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/storage"
)

// Validator - normalises and verifies an identifier
type Validator interface {
	ValidateAddress(string) (string, error)
}

// Handles - the pools the canvas owns
type Handles struct {
	Config     storage.Handle
	Dimensions storage.Handle
	Contract   storage.Handle
	Cooldowns  storage.Handle
	Chunks     storage.Handle
}

// DefaultHandles - the pools of the shared database
func DefaultHandles() Handles {
	return Handles{
		Config:     storage.Pool.Config,
		Dimensions: storage.Pool.Dimensions,
		Contract:   storage.Pool.Contract,
		Cooldowns:  storage.Pool.Cooldowns,
		Chunks:     storage.Pool.Chunks,
	}
}

// Env - supplied by the host for each call
type Env struct {
	Height uint64 // current logical height
	Sender string // validated caller identifier
}

// Attribute - descriptive key/value on a successful response
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response - the result of a successful execute call
type Response struct {
	Attributes []Attribute `json:"attributes"`
}

func newResponse(key string, value string) *Response {
	return &Response{
		Attributes: []Attribute{{Key: key, Value: value}},
	}
}

// Attribute - value of the first attribute with the key, if any
func (r *Response) Attribute(key string) string {
	if nil == r {
		return ""
	}
	for _, a := range r.Attributes {
		if key == a.Key {
			return a.Value
		}
	}
	return ""
}

// Canvas - operations over one canvas state
type Canvas struct {
	log        *logger.L
	validator  Validator
	config     storage.Handle
	dimensions storage.Handle
	contract   storage.Handle
	cooldowns  *cooldown.Table
	chunks     *grid.Store
}

// New - canvas over the given pools
func New(handles Handles, validator Validator) *Canvas {
	return &Canvas{
		log:        logger.New("canvas"),
		validator:  validator,
		config:     handles.Config,
		dimensions: handles.Dimensions,
		contract:   handles.Contract,
		cooldowns:  cooldown.New(handles.Cooldowns),
		chunks:     grid.New(handles.Chunks),
	}
}

func (c *Canvas) loadConfig() (*Config, error) {
	config := &Config{}
	found, err := getRecord(c.config, configKey, config)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.NotInstantiated
	}
	return config, nil
}

func (c *Canvas) loadDimensions() (*grid.Dimensions, error) {
	dimensions := &grid.Dimensions{}
	found, err := getRecord(c.dimensions, dimensionsKey, dimensions)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.NotInstantiated
	}
	return dimensions, nil
}
