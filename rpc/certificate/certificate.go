// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"encoding/pem"
	"io/ioutil"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/fault"
)

// Get - verify that a set of listener parameters are valid
// and return the certificate
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
		MinVersion: tls.VersionTLS12,
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Read - fetch the PEM text of a certificate and its key
func Read(certificateFile string, keyFile string) (string, string, error) {
	certificate, err := ioutil.ReadFile(certificateFile)
	if nil != err {
		return "", "", err
	}
	key, err := ioutil.ReadFile(keyFile)
	if nil != err {
		return "", "", err
	}
	return string(certificate), string(key), nil
}

// Fingerprint - compute the fingerprint of a DER certificate
//
// openssl x509 -outform DER -in slotd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// FingerprintPEM - fingerprint of the first certificate in PEM text
func FingerprintPEM(text string) ([32]byte, error) {
	block, _ := pem.Decode([]byte(text))
	if nil == block || "CERTIFICATE" != block.Type {
		return [32]byte{}, fault.NotACertificate
	}
	return Fingerprint(block.Bytes), nil
}
