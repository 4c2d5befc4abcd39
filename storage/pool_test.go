// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/canvasd/fault"
)

func TestInitialiseTwice(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	err := InitialiseInMemory()
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong error")
}

func TestPoolsAreDistinct(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	trx, err := NewDBTransaction()
	assert.Nil(t, err, "begin")

	key := []byte("key")
	_ = Pool.Config.Put(key, []byte("config"))
	_ = Pool.Chunks.Put(key, []byte("chunk"))
	assert.Nil(t, trx.Commit(), "commit")

	value, err := Pool.Config.Get(key)
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("config"), value, "wrong config value")

	value, err = Pool.Chunks.Get(key)
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("chunk"), value, "wrong chunk value")

	value, err = Pool.Dimensions.Get(key)
	assert.Nil(t, err, "get")
	assert.Nil(t, value, "value leaked into another pool")
}

func TestPutOutsideTransaction(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	err := Pool.Cooldowns.Put([]byte("k"), []byte("v"))
	assert.Equal(t, fault.TransactionNotStarted, err, "wrong error")

	err = Pool.Cooldowns.Delete([]byte("k"))
	assert.Equal(t, fault.TransactionNotStarted, err, "wrong error")
}

func TestStagedWritesVisibleBeforeCommit(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	trx, _ := NewDBTransaction()
	defer trx.Abort()

	_ = Pool.TestData.Put([]byte("k"), []byte("v"))

	value, err := Pool.TestData.Get([]byte("k"))
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("v"), value, "staged value not visible")

	found, err := Pool.TestData.Has([]byte("k"))
	assert.Nil(t, err, "has")
	assert.True(t, found, "staged key not found")
}

func TestAbortDiscards(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	trx, _ := NewDBTransaction()
	_ = Pool.TestData.Put([]byte("k"), []byte("v"))
	trx.Abort()

	value, err := Pool.TestData.Get([]byte("k"))
	assert.Nil(t, err, "get")
	assert.Nil(t, value, "aborted value persisted")

	found, _ := Pool.TestData.Has([]byte("k"))
	assert.False(t, found, "aborted key found")
}

func TestStagedDeleteHidesCommittedValue(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	trx, _ := NewDBTransaction()
	_ = Pool.TestData.Put([]byte("k"), []byte("v"))
	_ = trx.Commit()

	trx, _ = NewDBTransaction()
	_ = Pool.TestData.Delete([]byte("k"))

	value, _ := Pool.TestData.Get([]byte("k"))
	assert.Nil(t, value, "deleted value visible")
	found, _ := Pool.TestData.Has([]byte("k"))
	assert.False(t, found, "deleted key found")

	_ = trx.Commit()
	value, _ = Pool.TestData.Get([]byte("k"))
	assert.Nil(t, value, "deleted value persisted")
}

func TestPutNGetN(t *testing.T) {
	setupTestDatabase(t)
	defer teardownTestDatabase()

	n, found, err := Pool.Height.GetN([]byte("h"))
	assert.Nil(t, err, "get missing")
	assert.False(t, found, "missing value found")
	assert.Equal(t, uint64(0), n, "wrong default")

	trx, _ := NewDBTransaction()
	_ = Pool.Height.PutN([]byte("h"), 0x0102030405060708)
	_ = Pool.Height.Put([]byte("short"), []byte{1, 2, 3})
	_ = trx.Commit()

	n, found, err = Pool.Height.GetN([]byte("h"))
	assert.Nil(t, err, "get")
	assert.True(t, found, "value not found")
	assert.Equal(t, uint64(0x0102030405060708), n, "wrong value")

	_, _, err = Pool.Height.GetN([]byte("short"))
	assert.Equal(t, fault.TruncatedRecord, err, "wrong error")
}

func TestUninitialisedHandle(t *testing.T) {
	var p *PoolHandle

	_, err := p.Get([]byte("k"))
	assert.Equal(t, fault.NotInitialised, err, "wrong error")

	err = p.Put([]byte("k"), []byte("v"))
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}
