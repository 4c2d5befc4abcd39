// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/canvasd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingAddress  = fault.InvalidError("address is required")
	ErrMissingDatabase = fault.InvalidError("database is required")
	ErrMissingSender   = fault.InvalidError("sender is required")
)
