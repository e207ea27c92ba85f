// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute height and balance of a node from its children's
// cached heights
func (p *Node) refresh() int {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
	p.balance = lh - rh
	return p.balance
}

// walk from a node up to the root restoring heights, balances and
// rotating where a sub-tree has become too unbalanced
func (tree *Tree) balanceTree(p *Node) {
	for nil != p {

		// the rotations below move p, so take its parent first
		up := p.up

		balance := p.refresh()

		if balance > 1 {
			l := p.left
			if height(l.left) >= height(l.right) {
				// LL
				tree.rotateRight(p)
				p.refresh()
				l.refresh()
			} else {
				// LR
				m := l.right
				tree.rotateLeftRight(p)
				l.refresh()
				p.refresh()
				m.refresh()
			}
		} else if balance < -1 {
			r := p.right
			if height(r.right) >= height(r.left) {
				// RR
				tree.rotateLeft(p)
				p.refresh()
				r.refresh()
			} else {
				// RL
				m := r.left
				tree.rotateRightLeft(p)
				r.refresh()
				p.refresh()
				m.refresh()
			}
		}

		p = up
	}
}
