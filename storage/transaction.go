// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/canvasd/fault"
)

// Transaction - all-or-nothing unit of pool writes
type Transaction interface {
	Begin() error
	Commit() error
	Abort()
	InUse() bool
}

type TransactionImpl struct {
	sync.Mutex
	inUse  bool
	access []Access
}

func newTransaction(access []Access) Transaction {
	return &TransactionImpl{
		inUse:  false,
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}

	for i, a := range t.access {
		if err := a.Begin(); nil != err {
			for _, started := range t.access[:i] {
				started.Abort()
			}
			return err
		}
	}

	t.inUse = true
	return nil
}

// Commit - write all staged data, on failure nothing further is written
func (t *TransactionImpl) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotStarted
	}
	t.inUse = false

	for i, a := range t.access {
		if err := a.Commit(); nil != err {
			for _, pending := range t.access[i+1:] {
				pending.Abort()
			}
			return fault.Storage("commit", err)
		}
	}
	return nil
}

func (t *TransactionImpl) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, a := range t.access {
		a.Abort()
	}
	t.inUse = false
}

func (t *TransactionImpl) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
