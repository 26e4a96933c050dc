// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with parent
// references to allow upward navigation and iteration through the
// nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Nodes are kept in a per-tree arena and linked by index, so a
// parent reference never owns its target.  Inserting an element that
// compares equal to a stored one overwrites it in place.
//
// Deleting a node with two children copies a neighbouring element
// into it and splices out the neighbour instead.  The neighbour
// alternates between the maximum of the left sub-tree and the
// minimum of the right sub-tree on successive two-child deletions so
// that repeated deletes do not keep draining the same side.
package bst
