// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canvas - the pixel canvas state machine
//
// every operation loads what it needs, validates everything and only
// then stages its writes, so a rejected call stages nothing
//
// the caller owns the storage transaction:
//
//	trx.Begin → operation → Commit on success, Abort on error
//
// draw validation order:
//
//	coordinates → cooldown → end height → color
//
// administrative operations check the sender is the admin before
// looking at their arguments
package canvas
