// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Node - read-only view of one node of a tree
//
// a view is only valid until the next Add, Remove or Clear on its
// tree
type Node[T Item[T]] struct {
	tree *Tree[T]
	h    handle
}

// wrap a handle, false for the absent node
func (tree *Tree[T]) view(h handle) (Node[T], bool) {
	if none == h {
		return Node[T]{}, false
	}
	return Node[T]{tree: tree, h: h}, true
}

// Root - the root node of the tree
func (tree *Tree[T]) Root() (Node[T], bool) {
	return tree.view(tree.root)
}

// Element - read the item stored in the node
func (p Node[T]) Element() T {
	return p.tree.nodes[p.h].element
}

// Left - the left child
func (p Node[T]) Left() (Node[T], bool) {
	return p.tree.view(p.tree.nodes[p.h].left)
}

// Right - the right child
func (p Node[T]) Right() (Node[T], bool) {
	return p.tree.view(p.tree.nodes[p.h].right)
}

// Parent - return parent node of a node
func (p Node[T]) Parent() (Node[T], bool) {
	return p.tree.view(p.tree.nodes[p.h].up)
}

// IsLeaf - true if the node has no children
func (p Node[T]) IsLeaf() bool {
	n := &p.tree.nodes[p.h]
	return none == n.left && none == n.right
}

// Depth - get the depth of a node, the root is at depth zero
func (p Node[T]) Depth() uint {
	count := uint(0)
	for up := p.tree.nodes[p.h].up; none != up; up = p.tree.nodes[up].up {
		count += 1
	}
	return count
}

// ChildrenByDepth - all descendants at a specific depth below the
// node, left to right
func (p Node[T]) ChildrenByDepth(depth uint) []Node[T] {
	level := []handle{p.h}
	for ; depth > 0 && len(level) > 0; depth -= 1 {
		next := make([]handle, 0, 2*len(level))
		for _, h := range level {
			n := &p.tree.nodes[h]
			if none != n.left {
				next = append(next, n.left)
			}
			if none != n.right {
				next = append(next, n.right)
			}
		}
		level = next
	}
	nodes := make([]Node[T], 0, len(level))
	for _, h := range level {
		nodes = append(nodes, Node[T]{tree: p.tree, h: h})
	}
	return nodes
}
