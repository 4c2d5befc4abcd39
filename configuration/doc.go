// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or YAML configuration file
//
// a Lua file is executed and must return a table, so most of base Lua
// is available such as reading files to set key data and getenv to
// extract environment supplied items
// a YAML file is decoded strictly, unknown keys are an error
package configuration
