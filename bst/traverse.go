// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Ascend - call visit for each element in ascending order until it
// returns false
//
// uses an explicit stack since an unbalanced tree can be as deep as
// it is large
func (tree *Tree[T]) Ascend(visit func(T) bool) {
	stack := make([]handle, 0, 32)
	p := tree.root
	for none != p || len(stack) > 0 {
		for none != p {
			stack = append(stack, p)
			p = tree.nodes[p].left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(tree.nodes[p].element) {
			return
		}
		p = tree.nodes[p].right
	}
}

// Sorted - all elements in ascending order
func (tree *Tree[T]) Sorted() []T {
	out := make([]T, 0, tree.count)
	if 0 == tree.count {
		return out
	}
	tree.Ascend(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

// LevelOrder - all elements breadth first, left to right at each depth
func (tree *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, tree.count)
	if 0 == tree.count {
		return out
	}
	queue := make([]handle, 1, tree.count)
	queue[0] = tree.root
	for head := 0; head < len(queue); head += 1 {
		n := &tree.nodes[queue[head]]
		out = append(out, n.element)
		if none != n.left {
			queue = append(queue, n.left)
		}
		if none != n.right {
			queue = append(queue, n.right)
		}
	}
	return out
}

// Height - number of levels, zero for an empty tree
func (tree *Tree[T]) Height() int {
	return tree.height(tree.root)
}

// internal: levels in the sub-tree rooted at p
func (tree *Tree[T]) height(p handle) int {
	if none == p {
		return 0
	}
	height := 0
	level := []handle{p}
	for len(level) > 0 {
		height += 1
		next := make([]handle, 0, 2*len(level))
		for _, h := range level {
			n := &tree.nodes[h]
			if none != n.left {
				next = append(next, n.left)
			}
			if none != n.right {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}
