// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - return the node with the lowest key value
func (tree *Tree[T]) First() (Node[T], bool) {
	return tree.view(tree.first(tree.root))
}

// internal: lowest node in a sub-tree
func (tree *Tree[T]) first(p handle) handle {
	if none == p {
		return none
	}
	for none != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[T]) Last() (Node[T], bool) {
	return tree.view(tree.last(tree.root))
}

// internal: highest node in a sub-tree
func (tree *Tree[T]) last(p handle) handle {
	if none == p {
		return none
	}
	for none != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or false if no more nodes
func (p Node[T]) Next() (Node[T], bool) {
	nodes := p.tree.nodes
	if right := nodes[p.h].right; none != right {
		return p.tree.view(p.tree.first(right))
	}
	// climb until arriving from a left child
	child := p.h
	up := nodes[child].up
	for none != up && nodes[up].right == child {
		child = up
		up = nodes[up].up
	}
	return p.tree.view(up)
}

// Prev - given a node, return the node with the next lowest key
// value or false if no more nodes
func (p Node[T]) Prev() (Node[T], bool) {
	nodes := p.tree.nodes
	if left := nodes[p.h].left; none != left {
		return p.tree.view(p.tree.last(left))
	}
	// climb until arriving from a right child
	child := p.h
	up := nodes[child].up
	for none != up && nodes[up].left == child {
		child = up
		up = nodes[up].up
	}
	return p.tree.view(up)
}

// Min - the lowest element
func (tree *Tree[T]) Min() (T, bool) {
	if p, ok := tree.First(); ok {
		return p.Element(), true
	}
	var zero T
	return zero, false
}

// Max - the highest element
func (tree *Tree[T]) Max() (T, bool) {
	if p, ok := tree.Last(); ok {
		return p.Element(), true
	}
	var zero T
	return zero, false
}
