// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/storage"
)

// keys within the single record pools
var (
	configKey     = []byte("config")
	dimensionsKey = []byte("dimensions")
	contractKey   = []byte("contract_info")
)

// Config - the administrative state
type Config struct {
	Admin     string  `cbor:"1,keyasint" json:"admin_address"`
	Cooldown  uint64  `cbor:"2,keyasint" json:"cooldown"`
	EndHeight *uint64 `cbor:"3,keyasint,omitempty" json:"end_height"`
}

// ContractInfo - name and version of the code that created the canvas
type ContractInfo struct {
	Contract string `cbor:"1,keyasint" json:"contract"`
	Version  string `cbor:"2,keyasint" json:"version"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	// same record always encodes to the same bytes
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic("canvas: cbor encoder: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if nil != err {
		panic("canvas: cbor decoder: " + err.Error())
	}
}

// read a record, found is false if the key is absent
func getRecord(pool storage.Handle, key []byte, v interface{}) (bool, error) {
	buffer, err := pool.Get(key)
	if nil != err {
		return false, fault.Storage("get "+string(key), err)
	}
	if nil == buffer {
		return false, nil
	}
	if err := decMode.Unmarshal(buffer, v); nil != err {
		return false, fault.InvalidRecord
	}
	return true, nil
}

// stage a record
func putRecord(pool storage.Handle, key []byte, v interface{}) error {
	buffer, err := encMode.Marshal(v)
	if nil != err {
		return err
	}
	return fault.Storage("put "+string(key), pool.Put(key, buffer))
}
