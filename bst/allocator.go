// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// index of a node in the arena, zero is never allocated
type handle uint32

// the absent node
const none handle = 0

// a node in the tree
type node[T Item[T]] struct {
	left    handle // left sub-tree
	right   handle // right sub-tree
	up      handle // parent node, also the free list link
	element T      // the stored item
}

// storage for the nodes of one tree
//
// reclaimed nodes are kept on a linked list threaded through their up
// field and are reused before the slice is extended
type arena[T Item[T]] struct {
	nodes     []node[T]
	pool      handle // linked list of reclaimed nodes
	freeNodes int    // number of nodes in the pool
}

func newArena[T Item[T]]() arena[T] {
	return arena[T]{
		nodes: make([]node[T], 1, 16), // slot zero is the absent node
	}
}

// allocate a new node, reuses reclaimed nodes if any are available
//
// the slice may be reallocated, so callers must not hold a *node
// across this call
func (a *arena[T]) newNode(element T, up handle) handle {
	if none == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.nodes = append(a.nodes, node[T]{
			up:      up,
			element: element,
		})
		return handle(len(a.nodes) - 1)
	}
	h := a.pool
	p := &a.nodes[h]
	a.pool = p.up
	p.left = none
	p.right = none
	p.up = up
	p.element = element
	a.freeNodes -= 1
	return h
}

// reclaim a node and keep it in the pool
func (a *arena[T]) freeNode(h handle) {
	var zero T
	p := &a.nodes[h]
	p.left = none
	p.right = none
	p.element = zero // do not keep the item alive
	p.up = a.pool
	a.pool = h
	a.freeNodes += 1
}

// release all nodes
func (a *arena[T]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.pool = none
	a.freeNodes = 0
}
