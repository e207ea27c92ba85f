// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line tool for exploring AVL trees
//
// sub-commands show the rebalancing scenarios step by step, replay
// operation scripts, run randomised stress tests with full invariant
// checking and render trees in Graphviz dot format.
package main
