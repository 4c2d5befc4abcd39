// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pixel

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bitmark-inc/canvasd/fault"
)

// Color - a palette entry, the numeric value is the wire code
type Color uint8

// the fixed palette
const (
	White Color = iota
	LightGray
	Gray
	Black
	Pink
	Red
	Orange
	Brown
	Yellow
	LightGreen
	Green
	Turquoise
	LightBlue
	Blue
	Magenta
	Purple
)

// NumberOfColors - size of the palette
const NumberOfColors = int(Purple) + 1

// invalid is what an out of range integer code decodes to
const invalid = Color(0xff)

var colorNames = [NumberOfColors]string{
	"white",
	"light_gray",
	"gray",
	"black",
	"pink",
	"red",
	"orange",
	"brown",
	"yellow",
	"light_green",
	"green",
	"turquoise",
	"light_blue",
	"blue",
	"magenta",
	"purple",
}

// Valid - true if the color is a member of the palette
func (c Color) Valid() bool {
	return c <= Purple
}

func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// ColorFromString - palette entry by snake case name or decimal code
//
// an unknown decimal code is returned without error so that
// the caller can reject it with fault.InvalidColor
func ColorFromString(s string) (Color, error) {
	for i, name := range colorNames {
		if name == s {
			return Color(i), nil
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return invalid, fault.InvalidColor
	}
	return fromCode(n), nil
}

func fromCode(n uint64) Color {
	if n > uint64(invalid) {
		return invalid
	}
	return Color(n)
}

// MarshalText - snake case name
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fault.InvalidColor
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText - snake case name only
func (c *Color) UnmarshalText(s []byte) error {
	for i, name := range colorNames {
		if name == string(s) {
			*c = Color(i)
			return nil
		}
	}
	return fault.InvalidColor
}

// UnmarshalJSON - accept either a name string or an integer code
func (c *Color) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && '"' == data[0] {
		var s string
		if err := json.Unmarshal(data, &s); nil != err {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}
	var n uint64
	if err := json.Unmarshal(data, &n); nil != err {
		return fault.InvalidColor
	}
	*c = fromCode(n)
	return nil
}
