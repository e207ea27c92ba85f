// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/item"
	"github.com/bitmark-inc/avltree/script"
)

type scenario struct {
	description string
	text        string
}

// each scenario uses integer keys
var scenarios = map[string]scenario{
	"right-right": {
		description: "ascending inserts, single left rotation",
		text:        "insert 1 one\ninsert 2 two\ninsert 3 three\n",
	},
	"left-left": {
		description: "descending inserts, single right rotation",
		text:        "insert 3 three\ninsert 2 two\ninsert 1 one\n",
	},
	"left-right": {
		description: "left child heavy to the right, double rotation",
		text:        "insert 3 three\ninsert 1 one\ninsert 2 two\n",
	},
	"right-left": {
		description: "right child heavy to the left, double rotation",
		text:        "insert 1 one\ninsert 3 three\ninsert 2 two\n",
	},
	"remove-root": {
		description: "remove a root with two children, predecessor takes its place",
		text:        "insert 2 two\ninsert 1 one\ninsert 3 three\nremove 2\n",
	},
	"remove-rebalance": {
		description: "a removal that needs a rotation",
		text:        "insert 2 two\ninsert 1 one\ninsert 3 three\ninsert 4 four\nremove 1\n",
	},
	"equal-paths": {
		description: "leaf depths before and after unbalancing a perfect tree",
		text: "insert 4 four\ninsert 2 two\ninsert 6 six\ninsert 1 one\ninsert 3 three\n" +
			"insert 5 five\ninsert 7 seven\nequal-paths true\ninsert 8 eight\nequal-paths false\n",
	},
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runScenario(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		for _, name := range scenarioNames() {
			fmt.Fprintf(m.w, "%-18s %s\n", name, scenarios[name].description)
		}
		return nil
	}

	for _, name := range c.Args() {
		if err := showScenario(m.w, name, m.printData, m.log); nil != err {
			return err
		}
	}
	return nil
}

// apply a scenario one step at a time, printing the tree after each
func showScenario(w io.Writer, name string, printData bool, log *logger.L) error {
	s, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("no such scenario: %q", name)
	}

	operations, err := script.Parse(strings.NewReader(s.text))
	if nil != err {
		return err
	}

	fmt.Fprintf(w, "scenario: %s  (%s)\n", name, s.description)

	tree := avl.New()
	runner, err := script.NewRunner(tree, item.IntegerType, printData, w, log)
	if nil != err {
		return err
	}
	for _, op := range operations {
		fmt.Fprintf(w, "\n> %s %s\n", op.Op, op.Key)
		if _, err := runner.Run([]script.Operation{op}); nil != err {
			return err
		}
		if script.OpEqualPaths == op.Op {
			continue
		}
		if 0 == tree.Fprint(w, printData) {
			fmt.Fprintf(w, "(empty)\n")
		}
	}
	fmt.Fprintf(w, "\n")

	return tree.Check()
}
