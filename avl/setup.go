// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - a key item must implement the Compare function
//
// Compare returns a negative number if the receiver orders before the
// argument, zero if they are equal and a positive number otherwise
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int         // height(left) - height(right): -1, 0, +1
	height  int         // height of this sub-tree, leaf = 0
	free    bool        // true while held in the pool
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int

	// node pool
	pool       *Node // linked list of reclaimed nodes
	totalNodes int   // total nodes created
	freeNodes  int   // number of nodes in the pool
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Clear - remove all nodes returning them to the pool
func (tree *Tree) Clear() {
	tree.clear(tree.root)
	tree.root = nil
	tree.count = 0
}

func (tree *Tree) clear(p *Node) {
	if nil == p {
		return
	}
	tree.clear(p.left)
	tree.clear(p.right)
	tree.freeNode(p)
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left sub-tree of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right sub-tree of a node
func (p *Node) Right() *Node {
	return p.right
}

// Balance - height(left) - height(right) as recorded in the node
func (p *Node) Balance() int {
	return p.balance
}

// Height - height of the sub-tree rooted at this node, a leaf is 0
func (p *Node) Height() int {
	return p.height
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
