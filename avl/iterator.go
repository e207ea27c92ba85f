// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Successor - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Successor() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	for {
		up := tree.up
		if up == nil {
			return nil
		}
		if up.left == tree {
			return up
		}
		tree = up
	}
}

// Predecessor - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Predecessor() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	for {
		up := tree.up
		if up == nil {
			return nil
		}
		if up.right == tree {
			return up
		}
		tree = up
	}
}

// Walk - call f for each key and value in increasing key order until
// f returns false
//
// the tree must not be modified from inside f
func (tree *Tree) Walk(f func(key Item, value interface{}) bool) {
	for p := tree.First(); nil != p; p = p.Successor() {
		if !f(p.key, p.value) {
			return
		}
	}
}
