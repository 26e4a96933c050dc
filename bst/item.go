// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
	"fmt"
)

// Item - an element stored in the tree must implement Compare
//
// Compare returns a negative number, zero or a positive number as the
// receiver orders before, the same as or after x.  It must be a total
// order; elements comparing zero are the same key.
type Item[T any] interface {
	Compare(x T) int
}

// Ordered - adapts a built-in ordered type to Item
type Ordered[K cmp.Ordered] struct {
	Key K
}

// Compare - three-way comparison of the wrapped keys
func (o Ordered[K]) Compare(x Ordered[K]) int {
	return cmp.Compare(o.Key, x.Key)
}

// String - display the wrapped key
func (o Ordered[K]) String() string {
	return fmt.Sprint(o.Key)
}
