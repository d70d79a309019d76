// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/counter"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/rpc/certificate"
	"github.com/bitmark-inc/slotd/rpc/listeners"
	"github.com/bitmark-inc/slotd/rpc/server"
	"github.com/bitmark-inc/slotd/sale"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of open client connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, s sale.Sale, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	certificateText, keyText, err := certificate.Read(rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		log.Errorf("%s certificate read error: %s", tlsName, err)
		return err
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, certificateText, keyText)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, s, version, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		_ = rpcListener.Close()
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	err := globalData.listener.Close()
	if nil != err {
		globalData.log.Errorf("listener close error: %s", err)
	}
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
