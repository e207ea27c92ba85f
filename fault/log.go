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

// channel used for the final message before a panic
var log *logger.L

// how long to wait for the final message to be written
const flushDelay = 100 * time.Millisecond

// Initialise - open the log channel used by the critical routines
//
// must be called after logger.Initialise, without it the messages
// are written to stdout
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any pending messages
func Finalise() {
	if nil != log {
		log.Flush()
	}
	log = nil
}

// Criticalf - log a formatted critical message prefixed by the
// caller's source position
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// Panicf - log a formatted critical message then panic
//
// used when an internal structure is found to be corrupt, a state
// from which the caller cannot recover
func Panicf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
	message := fmt.Sprintf(format, arguments...)
	if nil != log {
		time.Sleep(flushDelay)
	}
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	criticalf(2, "%s failed with error: %s", message, err)
	panic(fmt.Sprintf("%s failed with error: %s", message, err))
}

func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		format = "(%q:%d) " + format
		arguments = a
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
