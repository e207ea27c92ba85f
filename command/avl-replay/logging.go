// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// start logging and the critical fault channel that writes through it
func startLogging(configuration logger.Configuration) error {
	if err := logger.Initialise(configuration); nil != err {
		return err
	}
	return fault.Initialise()
}

// flush the fault channel before the logger closes
func stopLogging() {
	fault.Finalise()
	logger.Finalise()
}
