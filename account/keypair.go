// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
)

// Generate - create a new ed25519 key pair and its account
func Generate(test bool) (*Account, ed25519.PrivateKey, error) {
	return generateFrom(rand.Reader, test)
}

func generateFrom(r io.Reader, test bool) (*Account, ed25519.PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(r)
	if nil != err {
		return nil, nil, err
	}
	a, err := New(publicKey, test)
	if nil != err {
		return nil, nil, err
	}
	return a, privateKey, nil
}
