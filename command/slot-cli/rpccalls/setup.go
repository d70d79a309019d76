// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/slotd/account"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	key     *account.PrivateKey // nil if only queries are possible
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a slotd
//
// fingerprint is the hex SHA3-256 of the server certificate as shown
// by "slotd fingerprint", blank accepts any certificate
func NewClient(testnet bool, connect string, fingerprint string, key *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" != fingerprint {
		expected, err := hex.DecodeString(fingerprint)
		if nil != err || len(expected) != 32 {
			return nil, fault.CertificateFingerprintMismatch
		}
		tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if 0 == len(rawCerts) {
				return fault.CertificateFingerprintMismatch
			}
			actual := certificate.Fingerprint(rawCerts[0])
			if string(actual[:]) != string(expected) {
				return fault.CertificateFingerprintMismatch
			}
			return nil
		}
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		key:     key,
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the slotd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// signer - the key for owner or buyer requests
func (client *Client) signer() (*account.PrivateKey, error) {
	if nil == client.key {
		return nil, fault.NotAPrivateKey
	}
	if client.key.Test != client.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return client.key, nil
}
