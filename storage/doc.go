// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk canvas state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes are staged in a single batch and only reach the
// database on Commit, so a call either writes everything or nothing.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. chunk x/y    = big endian uint64 (8 bytes)
// 4. identifier   = canonical Base58 account string bytes
// 5. height       = big endian uint64 (8 bytes)
//
// Canvas:
//
//	C                          - configuration
//	                             data: CBOR{admin, cooldown, end_height}
//	D                          - dimensions in chunk units
//	                             data: CBOR{width, height}
//	I                          - contract name and version
//	                             data: CBOR{contract, version}
//
// Cooldowns:
//
//	K ++ identifier            - next height at which identifier may draw
//	                             data: height
//
// Chunks:
//
//	X ++ chunk x ++ chunk y    - materialised chunk
//	                             data: packed 16x16 pixel matrix
//
// Host:
//
//	H                          - current logical height
//	                             data: height
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
