// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Replay program for AVL tree operation scripts
//
// This program reads a Lua configuration file naming a script of
// tree operations, applies the script to an empty tree and reports
// the result.  With "watch = true" it keeps running and replays the
// script on a fresh tree each time the file is written.
package main
