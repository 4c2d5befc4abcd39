// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cooldown - next eligible draw height per caller
//
// an absent entry reads as zero, i.e. eligible immediately
package cooldown

import (
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/storage"
)

// Table - entries keyed by caller identifier
type Table struct {
	pool storage.Handle
}

// New - table over the given pool
func New(pool storage.Handle) *Table {
	return &Table{
		pool: pool,
	}
}

// Get - next eligible height, zero if the caller never drew
func (t *Table) Get(identifier string) (uint64, error) {
	height, _, err := t.pool.GetN([]byte(identifier))
	if nil != err {
		return 0, fault.Storage("get cooldown", err)
	}
	return height, nil
}

// Set - stage a new eligibility height, overwriting any previous one
func (t *Table) Set(identifier string, height uint64) error {
	return fault.Storage("put cooldown", t.pool.PutN([]byte(identifier), height))
}

// Eligible - true if a caller may draw at the given height
func Eligible(height uint64, next uint64) bool {
	return height >= next
}

// Next - height plus interval, saturating at the maximum height
func Next(height uint64, interval uint64) uint64 {
	if height > ^uint64(0)-interval {
		return ^uint64(0)
	}
	return height + interval
}
