// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for rpc tests
package fixtures

import (
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/account"
)

// LogCategory - logger channel used by tests
const LogCategory = "testing"

var testingDirName string

// SetupTestLogger - start logging into a temporary directory
func SetupTestLogger() {
	dir, err := ioutil.TempDir("", "rpc-test")
	if nil != err {
		panic(err)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove its files
func TeardownTestLogger() {
	logger.Finalise()
	os.RemoveAll(testingDirName)
}

// Certificate - a self signed certificate and key as PEM text
func Certificate() (string, string, error) {
	cert, key, err := certgen.NewTLSCertPair("slotd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}

// Key - a new private key on the test network
func Key() *account.PrivateKey {
	key, err := account.NewPrivateKey(true)
	if nil != err {
		panic(err)
	}
	return key
}
