// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - the interface for a background process
//
// Run must return promptly once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown []chan struct{}
	finished []chan struct{}
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	t := &T{
		shutdown: make([]chan struct{}, len(processes)),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		t.shutdown[i] = shutdown
		t.finished[i] = finished

		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for each to return
func (t *T) Stop() {
	if nil == t {
		return
	}
	for _, shutdown := range t.shutdown {
		close(shutdown)
	}
	for _, finished := range t.finished {
		<-finished
	}
}
