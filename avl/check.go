// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify every structural invariant of the tree
//
// returns the first violation found:
//   parent links, strictly increasing keys, cached heights, balance
//   agreeing with the heights, balance in -1…+1 and the node count
func (tree *Tree) Check() error {
	if !tree.CheckUp() {
		return fault.ErrParentLink
	}

	n, _, err := check(tree.root)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	var previous Item
	ordered := true
	tree.Walk(func(key Item, value interface{}) bool {
		if nil != previous && previous.Compare(key) >= 0 {
			ordered = false
			return false
		}
		previous = key
		return true
	})
	if !ordered {
		return fault.ErrKeyOrdering
	}
	return nil
}

// internal: returns node count and real height of a sub-tree
func check(p *Node) (int, int, error) {
	if nil == p {
		return 0, -1, nil
	}
	ln, lh, err := check(p.left)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := check(p.right)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + lh
	if rh > lh {
		h = 1 + rh
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if lh-rh != p.balance {
		return 0, 0, fault.ErrBalanceMismatch
	}
	if p.balance < -1 || p.balance > 1 {
		return 0, 0, fault.ErrBalanceOutOfRange
	}
	return 1 + ln + rn, h, nil
}
