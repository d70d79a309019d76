// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/slotd/messagebus"
	"github.com/bitmark-inc/slotd/util"
)

const (
	lingerTime = 250 * time.Millisecond
)

type broadcaster struct {
	log     *logger.L
	chain   string
	queue   *messagebus.Queue
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func (brdc *broadcaster) initialise(log *logger.L, chainName string, broadcast []string, queue *messagebus.Queue) error {

	brdc.log = log
	brdc.chain = chainName
	brdc.queue = queue

	log.Info("initialising…")

	ok := false
	defer func() {
		if !ok {
			brdc.close()
		}
	}()

	for i, address := range broadcast {
		bindTo, v6, err := util.CanonicalIPandPort("tcp://", address)
		if nil != err {
			log.Errorf("broadcast[%d]: %q  error: %s", i, address, err)
			return err
		}

		socket := &brdc.socket4
		if v6 {
			socket = &brdc.socket6
		}
		if nil == *socket {
			*socket, err = newPublisher(v6)
			if nil != err {
				log.Errorf("socket error: %s", err)
				return err
			}
		}

		err = (*socket).Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			return err
		}
		log.Infof("bind[%d]: %q  IPv6: %t", i, bindTo, v6)
	}

	ok = true
	return nil
}

func newPublisher(v6 bool) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return nil, err
	}
	socket.SetLinger(lingerTime)
	socket.SetIpv6(v6)
	return socket, nil
}

// Run - forward queued events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := brdc.queue.Chan()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			log.Debugf("sending: %s  data: %s", item.Command, item.Parameters)
			frames := brdc.frames(&item)
			brdc.send(brdc.socket4, frames)
			brdc.send(brdc.socket6, frames)
		}
	}

	brdc.close()
	log.Info("stopped")
}

// the multipart message for an event
func (brdc *broadcaster) frames(item *messagebus.Message) [][]byte {
	frames := make([][]byte, 0, 2+len(item.Parameters))
	frames = append(frames, []byte(brdc.chain), []byte(item.Command))
	return append(frames, item.Parameters...)
}

// a subscriber that cannot keep up loses messages, never blocks the queue
func (brdc *broadcaster) send(socket *zmq.Socket, frames [][]byte) {
	if nil == socket {
		return
	}

	last := len(frames) - 1
	for i, frame := range frames {
		flags := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		_, err := socket.SendBytes(frame, flags)
		if nil != err {
			brdc.log.Warnf("send frame: %d  error: %s", i, err)
			return
		}
	}
}

func (brdc *broadcaster) close() {
	if nil != brdc.socket4 {
		brdc.socket4.Close()
		brdc.socket4 = nil
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
		brdc.socket6 = nil
	}
}
