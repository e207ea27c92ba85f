// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// if the key is already present only its value is overwritten and the
// tree shape is unchanged; returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = tree.newNode(key, value, nil)
		tree.count += 1
		return true
	}

	p := tree.root
	for {
		c := p.key.Compare(key)
		switch {
		case 0 == c:
			p.value = value
			return false

		case c > 0: // p.key > key
			if nil == p.left {
				p.left = tree.newNode(key, value, p)
				tree.count += 1
				tree.balanceTree(p.left)
				return true
			}
			p = p.left

		default: // p.key < key
			if nil == p.right {
				p.right = tree.newNode(key, value, p)
				tree.count += 1
				tree.balanceTree(p.right)
				return true
			}
			p = p.right
		}
	}
}
