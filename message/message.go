// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - JSON requests and responses
//
// execute and query messages are externally tagged, i.e. a single key
// naming the operation whose value holds the arguments:
//
//	{"draw":{"chunk_x":0,"chunk_y":1,"x":2,"y":3,"color":"red"}}
//	{"get_cooldown":{"address":"…"}}
//
// a colour may be a name or an integer code; an unknown name fails
// decoding with fault.InvalidColor before any canvas check runs, while
// an unknown code decodes and is only rejected by Draw once its
// earlier checks have passed
package message

import (
	"bytes"
	"encoding/json"

	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/pixel"
)

// InstantiateMsg - arguments to create a canvas
type InstantiateMsg struct {
	AdminAddress string  `json:"admin_address"`
	Cooldown     uint64  `json:"cooldown"`
	EndHeight    *uint64 `json:"end_height"`
	Width        uint64  `json:"width"`
	Height       uint64  `json:"height"`
}

// Draw - paint one pixel
type Draw struct {
	ChunkX uint64      `json:"chunk_x"`
	ChunkY uint64      `json:"chunk_y"`
	X      uint64      `json:"x"`
	Y      uint64      `json:"y"`
	Color  pixel.Color `json:"color"`
}

// UpdateAdmin - hand over administration
type UpdateAdmin struct {
	NewAdminAddress string `json:"new_admin_address"`
}

// UpdateCooldown - change the interval between draws
type UpdateCooldown struct {
	NewCooldown uint64 `json:"new_cooldown"`
}

// UpdateEndHeight - set or clear the final drawing height
type UpdateEndHeight struct {
	NewEndHeight *uint64 `json:"new_end_height"`
}

// ExecuteMsg - exactly one field is set
type ExecuteMsg struct {
	Draw            *Draw            `json:"draw,omitempty"`
	UpdateAdmin     *UpdateAdmin     `json:"update_admin,omitempty"`
	UpdateCooldown  *UpdateCooldown  `json:"update_cooldown,omitempty"`
	UpdateEndHeight *UpdateEndHeight `json:"update_end_height,omitempty"`
}

// Empty - argument of the parameterless queries
type Empty struct{}

// GetCooldown - query the next eligible height of an address
type GetCooldown struct {
	Address string `json:"address"`
}

// GetChunk - query a chunk by chunk coordinates
type GetChunk struct {
	X uint64 `json:"x"`
	Y uint64 `json:"y"`
}

// QueryMsg - exactly one field is set
type QueryMsg struct {
	GetConfig       *Empty       `json:"get_config,omitempty"`
	GetDimensions   *Empty       `json:"get_dimensions,omitempty"`
	GetCooldown     *GetCooldown `json:"get_cooldown,omitempty"`
	GetChunk        *GetChunk    `json:"get_chunk,omitempty"`
	GetContractInfo *Empty       `json:"get_contract_info,omitempty"`
}

// CooldownResponse - result of get_cooldown
type CooldownResponse struct {
	CurrentCooldown uint64 `json:"current_cooldown"`
}

// ChunkResponse - result of get_chunk, grid is indexed [x][y]
type ChunkResponse struct {
	Grid pixel.Chunk `json:"grid"`
}

// Name - the operation a message selects
func (m *ExecuteMsg) Name() string {
	switch {
	case nil == m:
		return ""
	case nil != m.Draw:
		return "draw"
	case nil != m.UpdateAdmin:
		return "update_admin"
	case nil != m.UpdateCooldown:
		return "update_cooldown"
	case nil != m.UpdateEndHeight:
		return "update_end_height"
	}
	return ""
}

func (m *ExecuteMsg) count() int {
	n := 0
	for _, set := range []bool{nil != m.Draw, nil != m.UpdateAdmin, nil != m.UpdateCooldown, nil != m.UpdateEndHeight} {
		if set {
			n += 1
		}
	}
	return n
}

// Name - the query a message selects
func (m *QueryMsg) Name() string {
	switch {
	case nil == m:
		return ""
	case nil != m.GetConfig:
		return "get_config"
	case nil != m.GetDimensions:
		return "get_dimensions"
	case nil != m.GetCooldown:
		return "get_cooldown"
	case nil != m.GetChunk:
		return "get_chunk"
	case nil != m.GetContractInfo:
		return "get_contract_info"
	}
	return ""
}

func (m *QueryMsg) count() int {
	n := 0
	for _, set := range []bool{nil != m.GetConfig, nil != m.GetDimensions, nil != m.GetCooldown, nil != m.GetChunk, nil != m.GetContractInfo} {
		if set {
			n += 1
		}
	}
	return n
}

// DecodeInstantiate - strict decode of an instantiate message
func DecodeInstantiate(data []byte) (*InstantiateMsg, error) {
	msg := &InstantiateMsg{}
	if err := decode(data, msg); nil != err {
		return nil, err
	}
	return msg, nil
}

// DecodeExecute - strict decode of an execute message
func DecodeExecute(data []byte) (*ExecuteMsg, error) {
	msg := &ExecuteMsg{}
	if err := decode(data, msg); nil != err {
		return nil, err
	}
	if 1 != msg.count() {
		return nil, fault.InvalidMessage
	}
	return msg, nil
}

// DecodeQuery - strict decode of a query message
func DecodeQuery(data []byte) (*QueryMsg, error) {
	msg := &QueryMsg{}
	if err := decode(data, msg); nil != err {
		return nil, err
	}
	if 1 != msg.count() {
		return nil, fault.InvalidMessage
	}
	return msg, nil
}

// unknown fields are rejected, color errors pass through unchanged
func decode(data []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(v)
	if nil == err {
		return nil
	}
	if fault.InvalidColor == err {
		return err
	}
	return fault.InvalidMessage
}
