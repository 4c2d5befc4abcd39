// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype **Just for Testing**
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm

	nothingKeyLength = 2
)

// Account - the identity of a canvas caller
//
// the text form is Base58(key variant ++ public key ++ checksum)
// and is the canonical identifier stored as admin, painter and
// cooldown key
type Account struct {
	Algorithm int
	Test      bool
	PublicKey []byte
}

// New - account for an ed25519 public key
func New(publicKey ed25519.PublicKey, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.InvalidKeyLength
	}
	return &Account{
		Algorithm: ED25519,
		Test:      test,
		PublicKey: append([]byte{}, publicKey...),
	}, nil
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.NotPublicKey
	}

	checksumStart := len(accountDecoded) - checksumLength
	account, err := FromBytes(accountDecoded[:checksumStart])
	if nil != err {
		return nil, err
	}

	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}
	return account, nil
}

// FromBytes - convert key variant ++ public key to an account
func FromBytes(accountBytes []byte) (*Account, error) {

	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	keyLength := len(accountBytes) - keyVariantLength
	if keyLength <= 0 {
		return nil, fault.InvalidKeyLength
	}

	switch keyAlgorithm {
	case ED25519:
		if ed25519.PublicKeySize != keyLength {
			return nil, fault.InvalidKeyLength
		}
	case Nothing:
		if nothingKeyLength != keyLength {
			return nil, fault.InvalidKeyLength
		}
	default:
		return nil, fault.InvalidKeyType
	}

	publicKey := make([]byte, keyLength)
	copy(publicKey, accountBytes[keyVariantLength:])

	return &Account{
		Algorithm: int(keyAlgorithm),
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// Bytes - key variant ++ public key
func (account *Account) Bytes() []byte {
	keyVariant := byte(account.Algorithm<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - base58 encoding of key variant ++ public key ++ checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// IsTesting - whether the key belongs to a test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// IsZero - true if the public key is all zero bytes
func (account *Account) IsZero() bool {
	for _, b := range account.PublicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON string to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
