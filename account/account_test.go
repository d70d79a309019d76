// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

// valid accounts
var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}

func TestValidBase58Account(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: unexpected error", index) {
			continue
		}
		assert.Equal(t, account.ED25519, acc.KeyType(), "%d: wrong key type", index)
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: wrong network", index)
		assert.Equal(t, test.publicKey, acc.PublicKeyBytes(), "%d: wrong public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: wrong round trip", index)

		fromBytes, err := account.AccountFromBytes(acc.Bytes())
		assert.Nil(t, err, "%d: bytes error", index)
		assert.True(t, acc.Equal(fromBytes), "%d: bytes mismatch", index)
	}
}

func TestInvalidBase58Account(t *testing.T) {
	_, err := account.AccountFromBase58("anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCk")
	assert.Equal(t, fault.ChecksumMismatch, err, "checksum not detected")

	_, err = account.AccountFromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAccount, err, "bad alphabet accepted")

	_, err = account.AccountFromBytes([]byte{0x10, 0x01, 0x02})
	assert.Equal(t, fault.NotAPublicKey, err, "private key variant accepted")
}

func TestAccountJSON(t *testing.T) {
	type holder struct {
		Owner *account.Account `json:"owner"`
	}

	in := `{"owner":"eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2"}`

	var h holder
	err := json.Unmarshal([]byte(in), &h)
	assert.Nil(t, err, "unmarshal error")
	assert.True(t, h.Owner.IsTesting(), "wrong network")

	out, err := json.Marshal(h)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, in, string(out), "wrong JSON")
}

func TestSignature(t *testing.T) {
	key, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "generate error")

	message := []byte("buy two slots")
	signature := key.Sign(message)

	acc := key.Account()
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature([]byte("buy three slots"), signature), "forged message accepted")
	assert.Equal(t, fault.InvalidSignature, acc.CheckSignature(message, signature[1:]), "short signature accepted")

	text, _ := signature.MarshalText()
	var decoded account.Signature
	assert.Nil(t, decoded.UnmarshalText(text), "unmarshal error")
	assert.Equal(t, signature, decoded, "signature round trip")
}

func TestPrivateKeyText(t *testing.T) {
	key, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "generate error")

	restored, err := account.PrivateKeyFromBase58(key.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, key.PrivateKey, restored.PrivateKey, "wrong key")
	assert.False(t, restored.Test, "wrong network")
	assert.True(t, key.Account().Equal(restored.Account()), "wrong account")

	_, err = account.PrivateKeyFromBase58(key.Account().String())
	assert.Equal(t, fault.NotAPrivateKey, err, "account accepted as private key")
}
