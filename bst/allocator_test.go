// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"testing"
)

type intItem int

func (i intItem) Compare(x intItem) int {
	switch {
	case i < x:
		return -1
	case i > x:
		return 1
	default:
		return 0
	}
}

func TestArenaReuse(t *testing.T) {
	tree := New[intItem]()
	for i := intItem(1); i <= 10; i += 1 {
		tree.Add(i)
	}
	allocated := len(tree.nodes)

	for i := intItem(1); i <= 5; i += 1 {
		if _, err := tree.Remove(i); nil != err {
			t.Fatalf("remove: %d  error: %s", i, err)
		}
	}
	if 5 != tree.freeNodes {
		t.Fatalf("free nodes: actual: %d  expected: 5", tree.freeNodes)
	}

	for i := intItem(11); i <= 15; i += 1 {
		tree.Add(i)
	}
	if allocated != len(tree.nodes) {
		t.Fatalf("arena grew: actual: %d  expected: %d", len(tree.nodes), allocated)
	}
	if 0 != tree.freeNodes {
		t.Fatalf("free nodes: actual: %d  expected: 0", tree.freeNodes)
	}
	if !tree.CheckUp() || !tree.CheckCount() {
		t.Fatal("inconsistent tree after reuse")
	}
}

func TestFreedNodeCleared(t *testing.T) {
	tree := New[intItem]()
	tree.Add(2)
	tree.Add(1)
	tree.Add(3)

	p := tree.locate(1)
	if _, err := tree.Remove(1); nil != err {
		t.Fatalf("remove error: %s", err)
	}
	n := tree.nodes[p]
	if none != n.left || none != n.right || 0 != n.element {
		t.Fatalf("freed node not cleared: %+v", n)
	}
	if tree.pool != p {
		t.Fatalf("freed node not at head of pool")
	}
}

func TestLocateEmpty(t *testing.T) {
	tree := New[intItem]()
	if none != tree.locate(3) {
		t.Fatal("locate on empty tree returned a node")
	}
}

// locate returns the would-be parent when the element is absent
func TestLocateParent(t *testing.T) {
	tree := New[intItem]()
	for _, i := range []intItem{5, 2, 8} {
		tree.Add(i)
	}
	p := tree.locate(7)
	if 8 != tree.nodes[p].element {
		t.Fatalf("locate: actual: %d  expected: 8", tree.nodes[p].element)
	}
	p = tree.locate(1)
	if 2 != tree.nodes[p].element {
		t.Fatalf("locate: actual: %d  expected: 2", tree.nodes[p].element)
	}
}

func TestClearResets(t *testing.T) {
	tree := NewStartingFrom[intItem](Right)
	for _, i := range []intItem{5, 2, 8, 1, 3, 7, 9} {
		tree.Add(i)
	}
	tree.Remove(5)
	if Left != tree.NextRemovalSide() {
		t.Fatal("side did not flip")
	}

	tree.Clear()
	if !tree.IsEmpty() || 0 != tree.Count() || 1 != len(tree.nodes) || none != tree.pool {
		t.Fatal("clear left data behind")
	}
	if Right != tree.NextRemovalSide() {
		t.Fatal("clear did not restore the first side")
	}
}
