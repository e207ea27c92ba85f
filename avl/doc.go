// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with parent pointers
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree (an empty sub-tree has
// height -1, a leaf 0) and a balance factor of height(left) -
// height(right).  After an insert or remove the tree walks from the
// changed position up to the root recomputing both and rotating any
// node whose balance leaves the range -1…+1.  The rotations only
// rewire links; heights and balances are the walk's responsibility.
//
// A remove of a node with two children first exchanges its position
// with its in-order predecessor, so the node that is spliced out of
// the tree always has at most one child.  Since positions are swapped
// rather than data copied, a *Node keeps its key and value for as
// long as it remains in the tree.
package avl
