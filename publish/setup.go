// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed sale events on zmq PUB sockets
//
// each event is a multipart message:
//   chain name ++ event name ++ JSON payload
package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/slotd/background"
	"github.com/bitmark-inc/slotd/fault"
	"github.com/bitmark-inc/slotd/messagebus"
)

// Configuration - a block of configuration data
type Configuration struct {
	Broadcast []string `gluamapper:"broadcast" json:"broadcast"`
}

// globals for background process
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting events

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcaster if any addresses are configured
func Initialise(configuration *Configuration, chainName string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	if 0 == len(configuration.Broadcast) {
		globalData.log.Info("no broadcast addresses: events are discarded")
	} else {
		err := globalData.brdc.initialise(globalData.log, chainName, configuration.Broadcast, messagebus.Bus.Events)
		if nil != err {
			return err
		}

		globalData.log.Info("start background…")

		processes := background.Processes{
			&globalData.brdc,
		}
		globalData.background = background.Start(processes, nil)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()
	globalData.background = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
