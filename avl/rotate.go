// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// put child into the slot that old occupies under parent, a nil
// parent means old was the root
func (tree *Tree) replaceChild(parent *Node, old *Node, child *Node) {
	if nil == parent {
		tree.root = child
	} else if parent.left == old {
		parent.left = child
	} else {
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}
}

// promote the left child of p into p's position
//
//	    p          l
//	   / \        / \
//	  l   c  →   a   p
//	 / \            / \
//	a   b          b   c
func (tree *Tree) rotateRight(p *Node) {
	l := p.left
	if nil == l {
		fault.Panicf("rotate right: node: %v has no left child", p.key)
	}

	p.left = l.right
	if nil != l.right {
		l.right.up = p
	}
	tree.replaceChild(p.up, p, l)

	l.right = p
	p.up = l
}

// promote the right child of p into p's position
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right
	if nil == r {
		fault.Panicf("rotate left: node: %v has no right child", p.key)
	}

	p.right = r.left
	if nil != r.left {
		r.left.up = p
	}
	tree.replaceChild(p.up, p, r)

	r.left = p
	p.up = r
}

// double rotation: the right child of p's left child ends up in p's
// position
func (tree *Tree) rotateLeftRight(p *Node) {
	tree.rotateLeft(p.left)
	tree.rotateRight(p)
}

// double rotation: the left child of p's right child ends up in p's
// position
func (tree *Tree) rotateRightLeft(p *Node) {
	tree.rotateRight(p.right)
	tree.rotateLeft(p)
}
