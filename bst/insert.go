// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Add - insert x into the tree
//
// if an element comparing equal is already stored it is replaced by x
// and the count does not change.  Returns true only if a new node was
// created.
func (tree *Tree[T]) Add(x T) bool {
	if none == tree.root {
		tree.root = tree.newNode(x, none)
		tree.count = 1
		return true
	}

	p := tree.locate(x)
	c := x.Compare(tree.nodes[p].element)
	if 0 == c {
		tree.nodes[p].element = x
		return false
	}

	n := tree.newNode(x, p)
	if c < 0 {
		tree.nodes[p].left = n
	} else {
		tree.nodes[p].right = n
	}
	tree.count += 1
	return true
}
