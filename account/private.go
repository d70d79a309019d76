// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/util"
)

// PrivateKey - an ed25519 signing key with its network flag
//
// text form is the same as an account, but without the public key
// bit in the key variant
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh random key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromBase58 - convert a Base58 encoded string to a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || len(decoded) <= checksumLength {
		return nil, fault.CannotDecodePrivateKey
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded)
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotAPrivateKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}

	priv := decoded[keyVariantLength:checksumStart]
	if ed25519.PrivateKeySize != len(priv) {
		return nil, fault.InvalidKeyLength
	}

	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: append(ed25519.PrivateKey{}, priv...),
	}, nil
}

// Account - the public half of the key
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: privateKey.PrivateKey.Public().(ed25519.PublicKey),
		},
	}
}

// Sign - produce a signature over a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(privateKey.PrivateKey, message))
}

// Bytes - byte slice for encoded key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding of encoded key
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}
