// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/item"
)

type stressParameters struct {
	operations int
	keyRange   int
	checkEvery int
	seed       int64
}

type stressResult struct {
	inserted int
	updated  int
	removed  int
	missing  int
	checks   int
	maxCount int
}

func runStress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p := stressParameters{
		operations: c.Int("operations"),
		keyRange:   c.Int("range"),
		checkEvery: c.Int("check-every"),
		seed:       c.Int64("seed"),
	}
	if p.operations <= 0 || p.keyRange <= 0 || p.checkEvery <= 0 {
		return fmt.Errorf("operations, range and check-every must all be positive")
	}
	if 0 == p.seed {
		p.seed = time.Now().UnixNano()
	}
	m.log.Infof("stress: %+v", p)

	var bar *progressbar.ProgressBar
	if !c.Bool("quiet") {
		bar = progressbar.NewOptions(p.operations,
			progressbar.OptionSetWriter(m.e),
			progressbar.OptionSetDescription("stress"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(m.e, "\n")
			}),
		)
	}

	tree := avl.New()
	result, err := stress(tree, p, bar)
	if nil != err {
		m.log.Errorf("stress failed: seed: %d  error: %s", p.seed, err)
		return fmt.Errorf("seed: %d: %w", p.seed, err)
	}

	total, free := tree.Nodes()
	fmt.Fprintf(m.w, "seed: %d  inserted: %d  updated: %d  removed: %d  missing: %d  checks: %d  largest: %d  final: %d  nodes: %d  free: %d\n",
		p.seed, result.inserted, result.updated, result.removed, result.missing,
		result.checks, result.maxCount, tree.Count(), total, free)
	return nil
}

// apply random operations to the tree, the progress bar is optional
func stress(tree *avl.Tree, p stressParameters, bar *progressbar.ProgressBar) (stressResult, error) {
	result := stressResult{}
	r := rand.New(rand.NewSource(p.seed))

	for i := 1; i <= p.operations; i += 1 {
		key := item.Integer(r.Intn(p.keyRange))

		if 0 == r.Intn(2) {
			if tree.Insert(key, i) {
				result.inserted += 1
			} else {
				result.updated += 1
			}
		} else {
			if tree.Remove(key) {
				result.removed += 1
			} else {
				result.missing += 1
			}
		}

		if tree.Count() > result.maxCount {
			result.maxCount = tree.Count()
		}

		if 0 == i%p.checkEvery {
			result.checks += 1
			if err := tree.Check(); nil != err {
				return result, fmt.Errorf("operation: %d: %w", i, err)
			}
		}

		if nil != bar {
			_ = bar.Add(1)
		}
	}

	if nil != bar {
		_ = bar.Finish()
	}

	result.checks += 1
	return result, tree.Check()
}
