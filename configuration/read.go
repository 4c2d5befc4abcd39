// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/bitmark-inc/canvasd/fault"
)

// ParseConfigurationFile - decode a file into the structure pointed to
// by config, the reader is chosen by the file extension:
//
//	.lua .conf   Lua
//	.yaml .yml   YAML
func ParseConfigurationFile(fileName string, config interface{}) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.InvalidStructPointer
	}

	// now sure item is a pointer, make sure it points to some kind of struct
	if rv.Elem().Kind() != reflect.Struct {
		return fault.InvalidStructPointer
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".lua", ".conf":
		return parseLua(fileName, config)
	case ".yaml", ".yml":
		return parseYAML(fileName, config)
	default:
		return fmt.Errorf("configuration: %q has unsupported extension", fileName)
	}
}
