// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/canvasd/fault"
)

// FetchCursor - walks the committed records of one pool in key order
//
// staged writes of an open transaction are not visible
type FetchCursor struct {
	pool     *PoolHandle
	maxRange util.Range
}

// NewFetchCursor - cursor positioned at the first key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: util.Range{
			Start: []byte{p.prefix}, // included
			Limit: p.limit,          // excluded
		},
	}
}

// Seek - position the cursor at the first key not less than key
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - up to count elements, the cursor advances past the last one
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.scan(func(e Element) error {
		results = append(results, e)
		if len(results) >= count {
			return errStop
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	if n := len(results); n > 0 {
		next := append(append([]byte{}, results[n-1].Key...), 0x00)
		cursor.maxRange.Start = cursor.pool.prefixKey(next)
	}
	return results, nil
}

// Map - call f on every remaining element, stopping at the first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	return cursor.scan(func(e Element) error {
		return f(e.Key, e.Value)
	})
}

// sentinel to end a scan early without reporting an error
const errStop = fault.ProcessError("stop")

// iterate the range handing each element, prefix removed and copied
// out of the iterator's buffers, to f
func (cursor *FetchCursor) scan(f func(Element) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}
	if nil == cursor.pool.dataAccess {
		return fault.NotInitialised
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.maxRange)
	defer iter.Release()

	for iter.Next() {
		e := Element{
			Key:   append([]byte{}, iter.Key()[1:]...),
			Value: append([]byte{}, iter.Value()...),
		}
		if err := f(e); errStop == err {
			return nil
		} else if nil != err {
			return err
		}
	}
	return iter.Error()
}
