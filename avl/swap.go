// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// exchange the positions of two nodes in the tree
//
// keys and values stay with their nodes; balance and height describe
// the position so they are exchanged as well
func (tree *Tree) nodeSwap(n1 *Node, n2 *Node) {
	if n1 == n2 {
		return
	}

	// when adjacent make n1 the parent
	if n1.up == n2 {
		n1, n2 = n2, n1
	}

	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right
	n1IsLeft := nil != p1 && p1.left == n1
	n2IsLeft := nil != p2 && p2.left == n2

	if p2 == n1 {
		// n2 moves up into n1's slot
		tree.setSlot(p1, n1IsLeft, n2)
		if l1 == n2 {
			n2.left = n1
			n2.right = r1
			if nil != r1 {
				r1.up = n2
			}
		} else {
			n2.right = n1
			n2.left = l1
			if nil != l1 {
				l1.up = n2
			}
		}
		n1.up = n2
	} else {
		tree.setSlot(p2, n2IsLeft, n1)
		tree.setSlot(p1, n1IsLeft, n2)

		n2.left = l1
		n2.right = r1
		if nil != l1 {
			l1.up = n2
		}
		if nil != r1 {
			r1.up = n2
		}
	}

	n1.left = l2
	n1.right = r2
	if nil != l2 {
		l2.up = n1
	}
	if nil != r2 {
		r2.up = n1
	}

	n1.balance, n2.balance = n2.balance, n1.balance
	n1.height, n2.height = n2.height, n1.height
}

// link child under parent on the given side, nil parent is the root
func (tree *Tree) setSlot(parent *Node, isLeft bool, child *Node) {
	child.up = parent
	if nil == parent {
		tree.root = child
	} else if isLeft {
		parent.left = child
	} else {
		parent.right = child
	}
}
