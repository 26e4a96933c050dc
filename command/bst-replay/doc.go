// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bst-replay - apply a stream of integers to a binary search tree
//
// positive integers are added, negative integers remove their
// absolute value and a zero ends the input and prints the final
// sorted and level order contents
//
//   echo 5 3 8 1 4 7 9 -3 0 | bst-replay --verbose
//
// an optional Lua configuration file selects the input, the side
// used by the first two-child removal and the logging setup, see
// bst-replay.conf.sample
package main
