// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/host"
	"github.com/bitmark-inc/canvasd/message"
)

type pixelExtent struct {
	Width  uint64 `json:"width"`
	Height uint64 `json:"height"`
}

type infoReply struct {
	Height     uint64               `json:"height"`
	Contract   *canvas.ContractInfo `json:"contract"`
	Config     *canvas.Config       `json:"config"`
	Dimensions *grid.Dimensions     `json:"dimensions"`
	Pixels     pixelExtent          `json:"pixels"`
	Chunks     []grid.Coordinate    `json:"chunks"`
}

func getInfo(h *host.Host) (*infoReply, error) {
	ctx := context.Background()
	reply := &infoReply{}

	var err error
	reply.Height, err = h.Height()
	if nil != err {
		return nil, err
	}

	result, err := h.Query(ctx, &message.QueryMsg{GetContractInfo: &message.Empty{}})
	if nil != err {
		return nil, err
	}
	reply.Contract = result.(*canvas.ContractInfo)

	result, err = h.Query(ctx, &message.QueryMsg{GetConfig: &message.Empty{}})
	if nil != err {
		return nil, err
	}
	reply.Config = result.(*canvas.Config)

	result, err = h.Query(ctx, &message.QueryMsg{GetDimensions: &message.Empty{}})
	if nil != err {
		return nil, err
	}
	reply.Dimensions = result.(*grid.Dimensions)
	reply.Pixels.Width, reply.Pixels.Height = reply.Dimensions.Pixels()

	reply.Chunks, err = h.Materialised()
	if nil != err {
		return nil, err
	}
	return reply, nil
}
