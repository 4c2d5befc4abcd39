// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Config     *PoolHandle `prefix:"C"`
	Dimensions *PoolHandle `prefix:"D"`
	Contract   *PoolHandle `prefix:"I"`
	Cooldowns  *PoolHandle `prefix:"K"`
	Chunks     *PoolHandle `prefix:"X"`
	Height     *PoolHandle `prefix:"H"`
	TestData   *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	log    *logger.L
	db     *leveldb.DB
	access Access
	trx    Transaction
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		return err
	}

	return setup(db, database, readOnly)
}

// InitialiseInMemory - open a volatile database, for tests and tools
func InitialiseInMemory() error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.AlreadyInitialised
	}

	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return err
	}

	return setup(db, "memory", ReadWrite)
}

// internal: must hold lock
func setup(db *leveldb.DB, name string, readOnly bool) error {
	ok := false
	poolData.db = db
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	log := logger.New("storage")
	poolData.log = log
	log.Infof("database: %q  read only: %t", name, readOnly)

	version, err := getVersion(db)
	if nil != err {
		return err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		if err := putVersion(db, currentDBVersion); nil != err {
			return err
		}
	}

	poolData.access = newDA(db, newCache())
	poolData.trx = newTransaction([]Access{poolData.access})

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: poolData.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

// internal: must hold lock
func dbClose() {
	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
	}
	poolData.access = nil
	poolData.trx = nil
	Pool = pools{}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	if nil != poolData.log {
		poolData.log.Info("shutting down…")
		poolData.log.Flush()
	}
	dbClose()
	poolData.Unlock()
}

// DBTransaction - the transaction that stages all pool writes
//
// call Begin before writing and Commit or Abort afterwards
func DBTransaction() Transaction {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.trx
}

// NewDBTransaction - begin the shared transaction
func NewDBTransaction() (Transaction, error) {
	trx := DBTransaction()
	if nil == trx {
		return nil, fault.NotInitialised
	}
	if err := trx.Begin(); nil != err {
		return nil, err
	}
	return trx, nil
}

func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
