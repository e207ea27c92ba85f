// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/dotgraph"
	"github.com/bitmark-inc/avltree/equalpaths"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/bitmark-inc/avltree/script Store

// Store - the tree operations a script needs, satisfied by *avl.Tree
type Store interface {
	Insert(key avl.Item, value interface{}) bool
	Remove(key avl.Item) bool
	Find(key avl.Item) (interface{}, error)
	Count() int
	Check() error
	Root() *avl.Node
	Fprint(w io.Writer, printData bool) int
}

// Summary - totals for a replayed script
type Summary struct {
	Operations int
	Inserted   int
	Updated    int
	Removed    int
	Missing    int // removals of absent keys
	Found      int
	NotFound   int
	Checks     int
}

// Runner - applies operations to a store
type Runner struct {
	store     Store
	keyType   string
	printData bool
	w         io.Writer
	log       *logger.L
}

// NewRunner - create a runner whose keys are parsed as keyType and
// whose find, print and dot output is written to w
func NewRunner(store Store, keyType string, printData bool, w io.Writer, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if !item.IsValidType(keyType) {
		return nil, fault.ErrInvalidKeyType
	}
	return &Runner{
		store:     store,
		keyType:   keyType,
		printData: printData,
		w:         w,
		log:       log,
	}, nil
}

// Run - apply each operation in turn, stopping at the first failure
func (r *Runner) Run(operations []Operation) (Summary, error) {
	summary := Summary{}
	for _, op := range operations {
		if err := r.apply(op, &summary); nil != err {
			r.log.Errorf("line: %d  %s %q failed: %s", op.Line, op.Op, op.Key, err)
			return summary, fmt.Errorf("line %d: %s: %w", op.Line, op.Op, err)
		}
		summary.Operations += 1
	}
	r.log.Infof("replayed: %d operations  inserted: %d  updated: %d  removed: %d  missing: %d  count: %d",
		summary.Operations, summary.Inserted, summary.Updated, summary.Removed, summary.Missing, r.store.Count())
	return summary, nil
}

func (r *Runner) apply(op Operation, summary *Summary) error {
	switch op.Op {
	case OpInsert:
		key, err := item.Parse(r.keyType, op.Key)
		if nil != err {
			return err
		}
		if r.store.Insert(key, op.Value) {
			summary.Inserted += 1
		} else {
			summary.Updated += 1
		}
		r.log.Debugf("insert: %v → %q", key, op.Value)

	case OpRemove:
		key, err := item.Parse(r.keyType, op.Key)
		if nil != err {
			return err
		}
		if r.store.Remove(key) {
			summary.Removed += 1
		} else {
			summary.Missing += 1
		}
		r.log.Debugf("remove: %v", key)

	case OpFind:
		return r.find(op, summary)

	case OpCount:
		n, err := strconv.Atoi(op.Value)
		if nil != err {
			return fault.ErrInvalidCount
		}
		if count := r.store.Count(); count != n {
			r.log.Warnf("count: %d  expected: %d", count, n)
			return fault.ErrUnexpectedCount
		}

	case OpCheck:
		summary.Checks += 1
		return r.store.Check()

	case OpEqualPaths:
		result := equalpaths.Check(equalpaths.FromAVL(r.store.Root()))
		fmt.Fprintf(r.w, "equal paths: %t\n", result)
		if "" != op.Value {
			expected, err := strconv.ParseBool(op.Value)
			if nil != err {
				return fault.ErrInvalidBoolean
			}
			if expected != result {
				return fault.ErrUnexpectedEqualPaths
			}
		}

	case OpPrint:
		r.store.Fprint(r.w, r.printData)

	case OpDot:
		return dotgraph.Write(r.w, r.store.Root(), r.printData)

	default:
		return fault.ErrInvalidOperation
	}
	return nil
}

func (r *Runner) find(op Operation, summary *Summary) error {
	key, err := item.Parse(r.keyType, op.Key)
	if nil != err {
		return err
	}

	value, err := r.store.Find(key)
	if fault.IsErrNotFound(err) {
		summary.NotFound += 1
		fmt.Fprintf(r.w, "%v: not found\n", key)
		if "" != op.Value {
			return err
		}
		return nil
	}
	if nil != err {
		return err
	}

	summary.Found += 1
	fmt.Fprintf(r.w, "%v: %v\n", key, value)
	if "" != op.Value && fmt.Sprint(value) != op.Value {
		r.log.Warnf("find: %v  value: %q  expected: %q", key, value, op.Value)
		return fault.ErrUnexpectedValue
	}
	return nil
}
