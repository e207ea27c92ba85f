// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dotgraph - render an AVL tree as a Graphviz digraph
//
// each node is labelled with its key and balance, optionally its
// value; a missing child is drawn as a point so that left and right
// children stay on their own side
package dotgraph

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"

	"github.com/bitmark-inc/avltree/avl"
)

// Graph - build the graph for the tree below root
func Graph(root *avl.Node, showData bool) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.Attr("ordering", "out")

	r := &renderer{
		g:        g,
		showData: showData,
	}
	if nil != root {
		r.node(root)
	}
	return g
}

// Write - output the graph for the tree below root in dot format
func Write(w io.Writer, root *avl.Node, showData bool) error {
	_, err := io.WriteString(w, Graph(root, showData).String())
	return err
}

type renderer struct {
	g        *dot.Graph
	showData bool
	n        int
}

// allocate a unique node id
func (r *renderer) id() string {
	r.n += 1
	return fmt.Sprintf("n%d", r.n)
}

func (r *renderer) node(p *avl.Node) dot.Node {
	label := fmt.Sprintf("%v b=%+d", p.Key(), p.Balance())
	if r.showData {
		label = fmt.Sprintf("%s\n%v", label, p.Value())
	}
	n := r.g.Node(r.id()).Label(label)

	if nil == p.Left() && nil == p.Right() {
		return n
	}
	r.g.Edge(n, r.child(p.Left()))
	r.g.Edge(n, r.child(p.Right()))
	return n
}

func (r *renderer) child(p *avl.Node) dot.Node {
	if nil == p {
		return r.g.Node(r.id()).Attr("shape", "point")
	}
	return r.node(p)
}
