// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/dotgraph"
	"github.com/bitmark-inc/avltree/script"
)

// apply the configured script to a new tree
func replay(config *Configuration, w io.Writer, log *logger.L) (script.Summary, error) {

	operations, err := script.Load(config.Script)
	if nil != err {
		log.Errorf("load script: %q  error: %s", config.Script, err)
		return script.Summary{}, err
	}
	log.Infof("script: %q  operations: %d", config.Script, len(operations))

	tree := avl.New()
	runner, err := script.NewRunner(tree, config.KeyType, config.PrintData, w, log)
	if nil != err {
		return script.Summary{}, err
	}

	summary, err := runner.Run(operations)
	if nil != err {
		return summary, err
	}

	if "" != config.DotFile {
		if err := writeDotFile(config.DotFile, tree, config.PrintData); nil != err {
			log.Errorf("dot file: %q  error: %s", config.DotFile, err)
			return summary, err
		}
		log.Infof("dot file: %q written", config.DotFile)
	}

	total, free := tree.Nodes()
	log.Debugf("nodes allocated: %d  free: %d", total, free)

	return summary, nil
}

func writeDotFile(fileName string, tree *avl.Tree, showData bool) error {
	f, err := os.Create(fileName)
	if nil != err {
		return err
	}
	err = dotgraph.Write(f, tree.Root(), showData)
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	return err
}
