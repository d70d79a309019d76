// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - a queued event
type Message struct {
	Command    string   // event name
	Parameters [][]byte // packed arguments
}

// Queue - a bounded channel of messages
type Queue struct {
	c       chan Message
	dropped uint64
}

// BusType - the set of queues in use
type BusType struct {
	Events    *Queue // committed sale events for the publisher
	TestQueue *Queue // for tests
}

// Bus - the global queues
var Bus = BusType{
	Events:    NewQueue(defaultQueueSize),
	TestQueue: NewQueue(defaultQueueSize),
}

// NewQueue - create a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, discarding it if the queue is full
//
// returns false if the message was discarded
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		atomic.AddUint64(&queue.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - count of discarded messages
func (queue *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
