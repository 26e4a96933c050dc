// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"math/rand"
	"testing"

	"github.com/google/btree"

	"github.com/bitmark-inc/bst/bst"
	"github.com/bitmark-inc/bst/fault"
)

// random adds and removes compared against a B-tree
func TestAgainstBTree(t *testing.T) {
	for _, side := range []bst.Side{bst.Left, bst.Right} {
		compareWithBTree(t, side, 1, 20000, 500)
		compareWithBTree(t, side, 2, 5000, 20)
	}
}

func compareWithBTree(t *testing.T, side bst.Side, seed int64, operations int, keyRange int) {
	rng := rand.New(rand.NewSource(seed))
	tree := bst.NewStartingFrom[key](side)
	oracle := btree.New(8)

	for i := 0; i < operations; i += 1 {
		k := rng.Intn(keyRange) + 1

		if 0 == rng.Intn(3) {
			removed, err := tree.Remove(key{k})
			expected := oracle.Delete(btree.Int(k))
			if nil == expected {
				if !fault.IsErrNotFound(err) {
					t.Fatalf("remove: %d  error: %v  expected: not found", k, err)
				}
			} else if nil != err || removed.Key != int(expected.(btree.Int)) {
				t.Fatalf("remove: %d  returned: %d  error: %v", k, removed.Key, err)
			}
		} else {
			inserted := tree.Add(key{k})
			replaced := oracle.ReplaceOrInsert(btree.Int(k))
			if inserted != (nil == replaced) {
				t.Fatalf("add: %d  inserted: %t  oracle replaced: %v", k, inserted, replaced)
			}
		}

		if tree.Count() != oracle.Len() {
			t.Fatalf("count: actual: %d  expected: %d", tree.Count(), oracle.Len())
		}
		if tree.Contains(key{k}) != oracle.Has(btree.Int(k)) {
			t.Fatalf("contains: %d  actual: %t", k, tree.Contains(key{k}))
		}

		if 0 == i%250 {
			checkTree(t, tree)
			sorted := tree.Sorted()
			n := 0
			oracle.Ascend(func(item btree.Item) bool {
				if sorted[n].Key != int(item.(btree.Int)) {
					t.Fatalf("sorted[%d]: actual: %d  expected: %d", n, sorted[n].Key, item.(btree.Int))
				}
				n += 1
				return true
			})
			if n != len(sorted) {
				t.Fatalf("sorted length: actual: %d  expected: %d", len(sorted), n)
			}
		}
	}
	checkTree(t, tree)
}
