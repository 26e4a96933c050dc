// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	if none == tree.root {
		return true
	}
	if none != tree.nodes[tree.root].up {
		return false
	}
	ok := true
	tree.walk(func(p handle) bool {
		n := &tree.nodes[p]
		if none != n.left && tree.nodes[n.left].up != p {
			ok = false
		} else if none != n.right && tree.nodes[n.right].up != p {
			ok = false
		}
		return ok
	})
	return ok
}

// CheckOrder - check that an in-order walk is strictly ascending
func (tree *Tree[T]) CheckOrder() bool {
	ok := true
	started := false
	var previous T
	tree.Ascend(func(x T) bool {
		if started && previous.Compare(x) >= 0 {
			ok = false
			return false
		}
		previous = x
		started = true
		return true
	})
	return ok
}

// CheckCount - check that the count matches the reachable nodes and
// that no node is reachable twice
func (tree *Tree[T]) CheckCount() bool {
	seen := make(map[handle]struct{}, tree.count)
	unique := true
	tree.walk(func(p handle) bool {
		if _, ok := seen[p]; ok {
			unique = false
			return false
		}
		seen[p] = struct{}{}
		return len(seen) <= tree.count
	})
	return unique && len(seen) == tree.count &&
		len(tree.nodes)-1 == tree.count+tree.freeNodes
}

// internal: pre-order visit of every node handle until visit returns false
func (tree *Tree[T]) walk(visit func(handle) bool) {
	if none == tree.root {
		return
	}
	stack := []handle{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(p) {
			return
		}
		n := &tree.nodes[p]
		if none != n.right {
			stack = append(stack, n.right)
		}
		if none != n.left {
			stack = append(stack, n.left)
		}
	}
}
