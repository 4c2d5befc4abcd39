// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grid

// Dimensions - canvas extent in chunk units
type Dimensions struct {
	Width  uint64 `cbor:"1,keyasint" json:"width" yaml:"width"`
	Height uint64 `cbor:"2,keyasint" json:"height" yaml:"height"`
}

// Valid - both extents must be non-zero
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Contains - true if the chunk coordinates are inside the canvas
func (d Dimensions) Contains(chunkX uint64, chunkY uint64) bool {
	return chunkX < d.Width && chunkY < d.Height
}

// Pixels - extent of the canvas in pixels, saturating
func (d Dimensions) Pixels() (uint64, uint64) {
	return scale(d.Width), scale(d.Height)
}

func scale(n uint64) uint64 {
	const maximum = ^uint64(0) / chunkSize
	if n > maximum {
		return ^uint64(0)
	}
	return n * chunkSize
}
