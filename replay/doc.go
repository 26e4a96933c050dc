// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - drive a tree from a stream of signed integers
//
// Input is whitespace separated decimal integers:
//
//   x > 0   add x
//   x < 0   remove -x
//   x = 0   stop and print the final sorted and level order dumps
//
// After each add or remove the count and in-order contents are
// printed when echo is enabled.
package replay
