// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree) newNode(key Item, value interface{}, up *Node) *Node {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panicf("pool corrupt: empty list with free count: %d", tree.freeNodes)
		}
		tree.totalNodes += 1
		return &Node{
			key:     key,
			value:   value,
			up:      up,
			balance: 0,
			height:  0,
		}
	}
	p := tree.pool
	tree.pool = p.up
	p.key = key
	p.value = value
	p.balance = 0
	p.height = 0
	p.left = nil
	p.right = nil
	p.up = up // also clears the freelist pointer
	p.free = false
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree) freeNode(node *Node) {
	if node.free {
		fault.Panicf("node: %p reclaimed twice", node)
	}
	node.up = tree.pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.balance = 0
	node.height = 0
	node.free = true
	tree.freeNodes += 1

	tree.pool = node
}

// Nodes - the number of nodes ever allocated by this tree and the
// number of those currently waiting in its pool for re-use
func (tree *Tree) Nodes() (total int, free int) {
	return tree.totalNodes, tree.freeNodes
}
