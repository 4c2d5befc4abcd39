// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pixel

import (
	"encoding/json"

	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/util"
)

// ChunkSize - width and height of a chunk in pixels
const ChunkSize = 16

// MaxPainterLength - longest painter identifier a chunk record holds
const MaxPainterLength = 256

// PixelInfo - a single cell
//
// an empty painter means the cell was never drawn
type PixelInfo struct {
	Color   Color
	Painter string
}

type pixelJSON struct {
	Color   Color   `json:"color"`
	Painter *string `json:"painter"`
}

// MarshalJSON - painter is null for an undrawn cell
func (p PixelInfo) MarshalJSON() ([]byte, error) {
	j := pixelJSON{Color: p.Color}
	if "" != p.Painter {
		painter := p.Painter
		j.Painter = &painter
	}
	return json.Marshal(j)
}

func (p *PixelInfo) UnmarshalJSON(data []byte) error {
	var j pixelJSON
	if err := json.Unmarshal(data, &j); nil != err {
		return err
	}
	p.Color = j.Color
	p.Painter = ""
	if nil != j.Painter {
		p.Painter = *j.Painter
	}
	return nil
}

// Chunk - cells indexed [x][y]
type Chunk [ChunkSize][ChunkSize]PixelInfo

// DefaultChunk - all white, no painter
func DefaultChunk() Chunk {
	return Chunk{}
}

// InChunk - true if the pixel coordinates lie inside a chunk
func InChunk(x uint64, y uint64) bool {
	return x < ChunkSize && y < ChunkSize
}

// Set - overwrite one cell, the coordinates must already be checked and
// the painter must be 1..MaxPainterLength bytes
func (chunk *Chunk) Set(x uint64, y uint64, color Color, painter string) {
	chunk[x][y] = PixelInfo{
		Color:   color,
		Painter: painter,
	}
}

// Pack - binary record, cells in [x][y] order
//
//	color  byte
//	painter varint length ++ bytes
func (chunk *Chunk) Pack() []byte {
	buffer := make([]byte, 0, 2*ChunkSize*ChunkSize)
	for x := 0; x < ChunkSize; x += 1 {
		for y := 0; y < ChunkSize; y += 1 {
			cell := chunk[x][y]
			buffer = append(buffer, byte(cell.Color))
			buffer = util.AppendBytes(buffer, []byte(cell.Painter))
		}
	}
	return buffer
}

// Unpack - decode a record written by Pack
func Unpack(record []byte) (*Chunk, error) {
	chunk := &Chunk{}
	n := 0
	for x := 0; x < ChunkSize; x += 1 {
		for y := 0; y < ChunkSize; y += 1 {
			if n >= len(record) {
				return nil, fault.TruncatedRecord
			}
			color := Color(record[n])
			if !color.Valid() {
				return nil, fault.InvalidRecord
			}
			n += 1

			painter, count := util.ClippedBytes(record[n:], MaxPainterLength)
			if 0 == count {
				return nil, fault.TruncatedRecord
			}
			n += count

			chunk[x][y] = PixelInfo{
				Color:   color,
				Painter: string(painter),
			}
		}
	}
	if n != len(record) {
		return nil, fault.InvalidRecord
	}
	return chunk, nil
}
