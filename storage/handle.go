// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/canvasd/fault"
)

// Handle - the operations available on a pool
type Handle interface {
	Get([]byte) ([]byte, error)
	GetN([]byte) (uint64, bool, error)
	Has([]byte) (bool, error)
	Put([]byte, []byte) error
	PutN([]byte, uint64) error
	Delete([]byte) error
	NewFetchCursor() *FetchCursor
}

// PoolHandle - the handle for a single prefixed pool
type PoolHandle struct {
	prefix     byte
	limit      []byte
	dataAccess Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - stage a key/value bytes pair, requires an active transaction
func (p *PoolHandle) Put(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == p.dataAccess {
		return fault.NotInitialised
	}
	return p.dataAccess.Put(p.prefixKey(key), value)
}

// PutN - stage a big endian uint64 value
func (p *PoolHandle) PutN(key []byte, value uint64) error {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	return p.Put(key, buffer)
}

// Delete - stage the removal of a key
func (p *PoolHandle) Delete(key []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == p.dataAccess {
		return fault.NotInitialised
	}
	return p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
//
// staged writes of an active transaction are visible
// returns nil, nil if the key does not exist
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == p.dataAccess {
		return nil, fault.NotInitialised
	}
	return p.dataAccess.Get(p.prefixKey(key))
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if nil != err {
		return 0, false, err
	}
	if nil == buffer {
		return 0, false, nil
	}
	if len(buffer) < 8 {
		return 0, false, fault.TruncatedRecord
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == p || nil == p.dataAccess {
		return false, fault.NotInitialised
	}
	return p.dataAccess.Has(p.prefixKey(key))
}
