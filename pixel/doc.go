// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pixel - the palette, pixel records and the chunk matrix
//
// a chunk is a fixed ChunkSize × ChunkSize matrix indexed [x][y]
// a chunk that was never written is all white with no painter
package pixel
