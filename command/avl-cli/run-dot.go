// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/dotgraph"
	"github.com/bitmark-inc/avltree/item"
)

func runDot(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(m.keyType, c.Args())
	if nil != err {
		return err
	}

	output := c.String("output")
	if "" == output {
		return dotgraph.Write(m.w, tree.Root(), m.printData)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "writing: %q  keys: %d\n", output, tree.Count())
	}

	f, err := os.Create(output)
	if nil != err {
		return err
	}
	err = dotgraph.Write(f, tree.Root(), m.printData)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	return err
}

// insert each key in order, the value is the key's position
func buildTree(keyType string, keys []string) (*avl.Tree, error) {
	tree := avl.New()
	for i, s := range keys {
		key, err := item.Parse(keyType, s)
		if nil != err {
			return nil, fmt.Errorf("key: %q: %w", s, err)
		}
		tree.Insert(key, i+1)
	}
	return tree, nil
}
