// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// find the node holding x, or the node that would be its parent
//
// returns none only for an empty tree
func (tree *Tree[T]) locate(x T) handle {
	p := tree.root
	pre := p
	for none != p {
		pre = p
		n := &tree.nodes[p]
		switch c := x.Compare(n.element); {
		case c < 0:
			p = n.left
		case c > 0:
			p = n.right
		default:
			return p
		}
	}
	return pre
}

// Contains - true if an element comparing equal to x is stored
func (tree *Tree[T]) Contains(x T) bool {
	p := tree.locate(x)
	return none != p && 0 == x.Compare(tree.nodes[p].element)
}

// Search - fetch the stored element that compares equal to x
func (tree *Tree[T]) Search(x T) (T, bool) {
	p := tree.locate(x)
	if none == p || 0 != x.Compare(tree.nodes[p].element) {
		var zero T
		return zero, false
	}
	return tree.nodes[p].element, true
}
