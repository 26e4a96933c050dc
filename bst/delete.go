// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bst/fault"
)

// Remove - removes a specific item from the tree
//
// returns the element as it was stored, or fault.ErrNotFound leaving
// the tree untouched
func (tree *Tree[T]) Remove(x T) (T, error) {
	var zero T
	if 0 == tree.count {
		return zero, fault.ErrNotFound
	}
	p := tree.locate(x)
	if 0 != x.Compare(tree.nodes[p].element) {
		return zero, fault.ErrNotFound
	}
	element := tree.nodes[p].element // preserve before any copy down
	tree.count -= 1
	tree.remove(p)
	return element, nil
}

// unlink a node from the tree
func (tree *Tree[T]) remove(p handle) {
	n := &tree.nodes[p]
	if none != n.left && none != n.right {
		tree.removeTwo(p)
	} else {
		tree.removeOne(p)
	}
}

// the only child of a node that has at most one
func (tree *Tree[T]) oneChild(p handle) handle {
	n := &tree.nodes[p]
	if none == n.left {
		return n.right
	}
	return n.left
}

// splice out a node that has at most one child
func (tree *Tree[T]) removeOne(p handle) {
	nc := tree.oneChild(p)
	up := tree.nodes[p].up

	if p == tree.root {
		tree.root = nc
	} else if tree.nodes[up].left == p {
		tree.nodes[up].left = nc
	} else {
		tree.nodes[up].right = nc
	}
	if none != nc {
		tree.nodes[nc].up = up // none when nc becomes the root
	}

	tree.freeNode(p)
}

// replace a node that has two children by a neighbour, alternating
// the side the neighbour is taken from
func (tree *Tree[T]) removeTwo(p handle) {
	switch tree.nextSide {
	case Right:
		tree.removeTwoFromRight(p)
	default:
		tree.removeTwoFromLeft(p)
	}
	tree.nextSide = tree.nextSide.other()
}

// copy up the minimum of the right sub-tree; it has no left child
func (tree *Tree[T]) removeTwoFromRight(p handle) {
	minRight := tree.first(tree.nodes[p].right)
	tree.nodes[p].element = tree.nodes[minRight].element
	tree.removeOne(minRight)
}

// copy up the maximum of the left sub-tree; it has no right child
func (tree *Tree[T]) removeTwoFromLeft(p handle) {
	maxLeft := tree.last(tree.nodes[p].left)
	tree.nodes[p].element = tree.nodes[maxLeft].element
	tree.removeOne(maxLeft)
}
