// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/canvasd/fault"
)

// Access - batched access to one database
type Access interface {
	Abort()
	Begin() error
	Commit() error
	Delete([]byte) error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	InUse() bool
	Iterator(*ldb_util.Range) iterator.Iterator
	Put([]byte, []byte) error
}

type AccessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &AccessData{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (d *AccessData) Begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionInUse
	}

	d.inUse = true
	return nil
}

func (d *AccessData) Put(key []byte, value []byte) error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}
	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
	return nil
}

func (d *AccessData) Delete(key []byte) error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}
	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
	return nil
}

// Commit - write the batch, the batch is discarded even if the write fails
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotStarted
	}
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()
	d.reset()
}

// internal: must hold lock
func (d *AccessData) reset() {
	d.batch.Reset()
	d.cache.Clear()
	d.inUse = false
}

// Get - staged value first, then the database
//
// returns nil, nil for a missing key
func (d *AccessData) Get(key []byte) ([]byte, error) {
	val, deleted, found := d.cache.Get(string(key))
	if found {
		if deleted {
			return nil, nil
		}
		return val, nil
	}

	val, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return val, err
}

func (d *AccessData) Has(key []byte) (bool, error) {
	_, deleted, found := d.cache.Get(string(key))
	if found {
		return !deleted, nil
	}
	return d.db.Has(key, nil)
}

func (d *AccessData) InUse() bool {
	d.Lock()
	defer d.Unlock()
	return d.inUse
}

// Iterator - committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
