// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"strings"

	"github.com/bitmark-inc/bst/fault"
)

// Side - which sub-tree a two-child deletion takes its replacement from
type Side int

// the two replacement strategies
const (
	Left  Side = iota // maximum of the left sub-tree
	Right Side = iota // minimum of the right sub-tree
)

// String - name of the side
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// other - the opposite side
func (s Side) other() Side {
	if Left == s {
		return Right
	}
	return Left
}

// ParseSide - convert a side name, as written in a configuration file
func ParseSide(name string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l", "predecessor":
		return Left, nil
	case "right", "r", "successor":
		return Right, nil
	default:
		return Left, fault.ErrInvalidSide
	}
}

// Tree - type to hold the root node of a tree
type Tree[T Item[T]] struct {
	arena[T]
	root      handle
	count     int
	firstSide Side // side used by the first two-child deletion
	nextSide  Side // side used by the next two-child deletion
}

// New - create an initially empty tree
//
// the first deletion of a node with two children promotes the
// maximum of its left sub-tree
func New[T Item[T]]() *Tree[T] {
	return NewStartingFrom[T](Left)
}

// NewStartingFrom - create an initially empty tree whose first
// two-child deletion draws from the given side
func NewStartingFrom[T Item[T]](side Side) *Tree[T] {
	if Right != side {
		side = Left
	}
	return &Tree[T]{
		arena:     newArena[T](),
		root:      none,
		count:     0,
		firstSide: side,
		nextSide:  side,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return none == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// NextRemovalSide - the side the next two-child deletion will use
func (tree *Tree[T]) NextRemovalSide() Side {
	return tree.nextSide
}

// Clear - remove every element and restore the initial removal side
func (tree *Tree[T]) Clear() {
	tree.reset()
	tree.root = none
	tree.count = 0
	tree.nextSide = tree.firstSide
}
