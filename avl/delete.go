// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// removing an absent key does nothing and returns false
func (tree *Tree) Remove(key Item) bool {
	q := tree.Search(key)
	if nil == q {
		return false
	}

	// reduce to the one-or-no children case
	if nil != q.left && nil != q.right {
		tree.nodeSwap(q, q.Predecessor())
	}

	child := q.left
	if nil == child {
		child = q.right
	}
	parent := q.up
	tree.replaceChild(parent, q, child)

	tree.freeNode(q)
	tree.count -= 1

	tree.balanceTree(parent)
	return true
}

// Delete - removes a specific item from the tree returning its value
// or nil if the key was not present
func (tree *Tree) Delete(key Item) interface{} {
	q := tree.Search(key)
	if nil == q {
		return nil
	}
	value := q.value // preserve the value part
	tree.Remove(key)
	return value
}
