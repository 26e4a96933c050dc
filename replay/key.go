// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"cmp"
	"strconv"
)

// Key - the element type of a replayed tree
type Key int

// Compare - ordering for the tree
func (k Key) Compare(x Key) int {
	return cmp.Compare(k, x)
}

// String - decimal form
func (k Key) String() string {
	return strconv.Itoa(int(k))
}

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/bst/replay Tree

// Tree - the tree operations a replay needs
type Tree interface {
	Add(Key) bool
	Remove(Key) (Key, error)
	Count() int
	Sorted() []Key
	LevelOrder() []Key
	Render() string
}
