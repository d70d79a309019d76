// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// delay before panic so the log file can be written
const panicDelay = 100 * time.Millisecond

// the "PANIC" channel, nil until Initialise
var log *logger.L

// Initialise - open the log channel used for the last messages before a panic
func Initialise() error {
	if nil != log {
		return AlreadyInitialised
	}
	log = logger.New("PANIC")
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Panicf - log a formatted message then panic
func Panicf(format string, arguments ...interface{}) {
	criticalAt(2, format, arguments...)
	Panic("abort, see last messages in log file")
}

// Panic - final panic
func Panic(message string) {
	writeCritical("%s", message)
	time.Sleep(panicDelay)
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	writeCritical("%s", s)
	time.Sleep(panicDelay)
	panic(s)
}

// ReportCorruption - log record and length errors found while decoding stored data
//
// the error is returned unchanged so operations still fail normally
func ReportCorruption(operation string, err error) error {
	if IsErrRecord(err) || IsErrLength(err) {
		criticalAt(2, "%s: stored data is damaged: %s", operation, err)
	}
	return err
}

// skip is the number of frames between runtime.Caller and the reported function
func criticalAt(skip int, format string, arguments ...interface{}) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		writeCritical(format, arguments...)
		return
	}
	a := append([]interface{}{file, line}, arguments...)
	writeCritical("(%q:%d) "+format, a...)
}

// without a channel the message goes to stdout
func writeCritical(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
