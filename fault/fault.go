// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised    = ExistsError("already initialised")
	AlreadyInstantiated   = ExistsError("canvas is already instantiated")
	CannotDecodeAccount   = InvalidError("cannot decode account")
	ChecksumMismatch      = InvalidError("checksum mismatch")
	EndHeightReached      = ProcessError("the end height of this grid has been reached, drawing is no longer allowed")
	HeightDecreased       = InvalidError("logical height cannot decrease")
	InvalidAddress        = InvalidError("invalid address")
	InvalidColor          = InvalidError("invalid color, color code must be between 0 and 15")
	InvalidCoordinates    = InvalidError("invalid coordinates, must be within the width and height of the grid")
	InvalidCount          = InvalidError("invalid count")
	InvalidCursor         = InvalidError("invalid cursor")
	InvalidDimensions     = InvalidError("width and height must both be greater than zero")
	InvalidEndHeight      = InvalidError("end height must be greater than the current block height")
	InvalidKeyLength      = InvalidError("invalid key length")
	InvalidKeyType        = InvalidError("invalid key type")
	InvalidMessage        = InvalidError("invalid message")
	InvalidRecord         = RecordError("invalid record")
	InvalidStructPointer  = InvalidError("invalid struct pointer")
	NotInitialised        = NotFoundError("not initialised")
	NotInstantiated       = NotFoundError("canvas is not instantiated")
	NotPublicKey          = InvalidError("not a public key")
	RateLimited           = ProcessError("rate limited")
	StillOnCooldown       = ProcessError("this address is still on cooldown, please wait until you can draw again")
	TransactionInUse      = ProcessError("transaction already in use")
	TransactionNotStarted = ProcessError("transaction not started")
	TruncatedRecord       = RecordError("truncated record")
	Unauthorized          = PermissionError("unauthorized")
	WrongNetwork          = InvalidError("address belongs to a different network")
)

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }

// StorageError - an error from the underlying key/value store,
// passed through unchanged to the caller
type StorageError struct {
	Op  string
	Err error
}

// Storage - wrap a store error, nil stays nil
func Storage(op string, err error) error {
	if nil == err {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %s: %s", e.Op, e.Err)
}

// Unwrap - expose the store error to errors.Is and errors.As
func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsErrStorage - true if the error came from the store
func IsErrStorage(e error) bool { _, ok := e.(*StorageError); return ok }
