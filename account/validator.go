// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"strings"

	"github.com/bitmark-inc/canvasd/fault"
)

// Validator - checks that an address is a well formed account
// on the expected network and returns its canonical form
type Validator struct {
	Testing bool
}

// ValidateAddress - normalise and verify a caller supplied address
func (v Validator) ValidateAddress(address string) (string, error) {
	a, err := FromBase58(strings.TrimSpace(address))
	if nil != err {
		return "", fault.InvalidAddress
	}
	if a.IsTesting() != v.Testing {
		return "", fault.WrongNetwork
	}
	return a.String(), nil
}
