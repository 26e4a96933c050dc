// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// limits used by Render
const (
	RenderDepth = 24  // levels drawn, including the root
	RenderNodes = 512 // nodes drawn
)

// Render - an ASCII graphic representation of the tree, the empty
// string for an empty tree
//
// at most RenderDepth levels and RenderNodes nodes are drawn
func (tree *Tree[T]) Render() string {
	return tree.RenderLimited(RenderDepth, RenderNodes)
}

// RenderLimited - draw at most maxDepth levels and maxNodes nodes
//
// each child is tagged L or R since a lone child would otherwise be
// ambiguous.  A sub-tree that is not drawn is replaced by a single
// leaf giving the number of levels it holds.
func (tree *Tree[T]) RenderLimited(maxDepth int, maxNodes int) string {
	if none == tree.root {
		return ""
	}

	type pending struct {
		out   treeprint.Tree
		h     handle
		depth int
	}

	out := treeprint.NewWithRoot(fmt.Sprintf("%v", tree.nodes[tree.root].element))
	drawn := 1

	// breadth first so a node limit trims the deepest levels
	queue := []pending{{out: out, h: tree.root, depth: 1}}
	for head := 0; head < len(queue); head += 1 {
		item := queue[head]
		n := &tree.nodes[item.h]
		children := [2]struct {
			tag string
			h   handle
		}{
			{"L", n.left},
			{"R", n.right},
		}
		for _, child := range children {
			if none == child.h {
				continue
			}
			if item.depth >= maxDepth || drawn >= maxNodes {
				item.out.AddNode(fmt.Sprintf("%s: … %d more levels", child.tag, tree.height(child.h)))
				continue
			}
			drawn += 1
			c := &tree.nodes[child.h]
			label := fmt.Sprintf("%s: %v", child.tag, c.element)
			if none == c.left && none == c.right {
				item.out.AddNode(label)
			} else {
				queue = append(queue, pending{
					out:   item.out.AddBranch(label),
					h:     child.h,
					depth: item.depth + 1,
				})
			}
		}
	}
	return out.String()
}

// Print - display the tree, returns the height of the tree
func (tree *Tree[T]) Print(w io.Writer) int {
	fmt.Fprint(w, tree.Render())
	return tree.Height()
}
