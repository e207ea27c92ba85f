// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/script"
)

func runReplay(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("at least one script file is required")
	}

	for _, fileName := range c.Args() {
		operations, err := script.Load(fileName)
		if nil != err {
			return fmt.Errorf("%s: %w", fileName, err)
		}

		tree := avl.New()
		runner, err := script.NewRunner(tree, m.keyType, m.printData, m.w, m.log)
		if nil != err {
			return err
		}

		summary, err := runner.Run(operations)
		if nil != err {
			return fmt.Errorf("%s: %w", fileName, err)
		}

		if m.verbose {
			fmt.Fprintf(m.e, "%s: operations: %d  inserted: %d  updated: %d  removed: %d  missing: %d  count: %d\n",
				fileName, summary.Operations, summary.Inserted, summary.Updated,
				summary.Removed, summary.Missing, tree.Count())
		}
	}
	return nil
}
