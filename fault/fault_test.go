// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/canvasd/fault"
)

var (
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrExistsTwo     = fault.ExistsError("exists two")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrInvalidTwo    = fault.InvalidError("invalid two")
	ErrLengthOne     = fault.LengthError("length one")
	ErrLengthTwo     = fault.LengthError("length two")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrNotFoundTwo   = fault.NotFoundError("not found two")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrProcessOne    = fault.ProcessError("process one")
	ErrProcessTwo    = fault.ProcessError("process two")
	ErrRecordOne     = fault.RecordError("record one")
	ErrStorageOne    = fault.Storage("get", errors.New("disk on fire"))
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		length     bool
		notFound   bool
		permission bool
		process    bool
		record     bool
		storage    bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false, false, false},
		{ErrPermissionOne, false, false, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false, false},
		{ErrProcessTwo, false, false, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, false, false, true, false},
		{ErrStorageOne, false, false, false, false, false, false, false, true},
		{fault.Unauthorized, false, false, false, false, true, false, false, false},
		{fault.StillOnCooldown, false, false, false, false, false, true, false, false},
		{fault.InvalidCoordinates, false, true, false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrStorage(err) != e.storage {
			t.Errorf("%d: expected 'storage' == %v for err = %v", i, e.storage, err)
		}
	}
}

func TestStorageUnwrap(t *testing.T) {
	cause := errors.New("short write")
	err := fault.Storage("commit", cause)

	if !errors.Is(err, cause) {
		t.Errorf("storage error does not unwrap to: %v", cause)
	}
	if "storage failure: commit: short write" != err.Error() {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if nil != fault.Storage("commit", nil) {
		t.Error("nil cause must give nil error")
	}
}
