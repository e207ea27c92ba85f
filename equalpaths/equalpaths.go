// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equalpaths - check that every root to leaf path in a
// binary tree has the same length
package equalpaths

import (
	"github.com/bitmark-inc/avltree/avl"
)

// Node - a node of an arbitrary, unordered binary tree
type Node struct {
	Left  *Node
	Right *Node
}

// Check - true if all leaves are at the same depth
//
// an empty tree has no leaves and is accepted
func Check(root *Node) bool {
	leafDepth := -1
	return isDepth(root, 0, &leafDepth)
}

// the first leaf reached fixes the depth all others must match
func isDepth(p *Node, depth int, leafDepth *int) bool {
	if nil == p {
		return true
	}

	if nil == p.Left && nil == p.Right {
		if -1 == *leafDepth {
			*leafDepth = depth
			return true
		}
		return depth == *leafDepth
	}

	return isDepth(p.Left, depth+1, leafDepth) && isDepth(p.Right, depth+1, leafDepth)
}

// FromAVL - copy the shape of the AVL sub-tree rooted at p
func FromAVL(p *avl.Node) *Node {
	if nil == p {
		return nil
	}
	return &Node{
		Left:  FromAVL(p.Left()),
		Right: FromAVL(p.Right()),
	}
}
