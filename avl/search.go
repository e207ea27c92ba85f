// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find the node holding a specific key, nil if not present
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Find - fetch the value stored for a key
//
// returns fault.ErrKeyNotFound if the key is not present
func (tree *Tree) Find(key Item) (interface{}, error) {
	p := tree.Search(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}
