// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package replay

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/fault"
)

// Options - output controls
type Options struct {
	Echo     bool // print count and contents after each operation
	DrawTree bool // draw the tree as part of the final dump
}

// Stats - what happened during a replay
type Stats struct {
	Tokens   int // integers read, including the terminator
	Adds     int // new elements
	Replaces int // adds of an existing element
	Removes  int // successful removals
	Misses   int // removals of an absent element
}

// Replay - apply a stream of operations to a tree
type Replay struct {
	tree    Tree
	out     io.Writer
	log     *logger.L
	options Options
	stats   Stats
}

// New - create a replay writing its dumps to out
func New(tree Tree, out io.Writer, log *logger.L, options Options) *Replay {
	return &Replay{
		tree:    tree,
		out:     out,
		log:     log,
		options: options,
	}
}

// Stats - counters so far
func (r *Replay) Stats() Stats {
	return r.stats
}

// Run - read and apply integers until the terminator or end of input
//
// returns true if the terminator was seen, in which case the final
// dump has been written
func (r *Replay) Run(in io.Reader) (bool, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		token := scanner.Text()
		value, err := strconv.Atoi(token)
		if nil != err || math.MinInt == value {
			r.log.Errorf("token[%d]: %q is not a usable integer", r.stats.Tokens, token)
			return false, fmt.Errorf("token[%d] %q: %w", r.stats.Tokens, token, fault.ErrInvalidToken)
		}
		r.stats.Tokens += 1
		if r.Apply(value) {
			return true, nil
		}
	}
	if err := scanner.Err(); nil != err {
		r.log.Errorf("read error: %s", err)
		return false, err
	}

	r.log.Warn("input ended without a terminating zero")
	return false, nil
}

// Apply - perform one operation, returns true for the terminator
//
// math.MinInt has no positive counterpart and must not be passed
func (r *Replay) Apply(value int) bool {
	switch {
	case value > 0:
		r.add(Key(value))
		if r.options.Echo {
			fmt.Fprintf(r.out, "Add %d : %s\n", value, r.contents())
		}
	case value < 0:
		r.remove(Key(-value))
		if r.options.Echo {
			fmt.Fprintf(r.out, "Remove %d : %s\n", value, r.contents())
		}
	default:
		r.Final()
		return true
	}
	return false
}

// Final - write the sorted and level order dumps
func (r *Replay) Final() {
	fmt.Fprintf(r.out, "Final: %s\n", join(r.tree.Sorted()))
	fmt.Fprintf(r.out, "Level Order: %s\n", join(r.tree.LevelOrder()))
	if r.options.DrawTree {
		fmt.Fprint(r.out, r.tree.Render())
	}
	r.log.Infof("final count: %d  stats: %+v", r.tree.Count(), r.stats)
}

func (r *Replay) add(key Key) {
	if r.tree.Add(key) {
		r.stats.Adds += 1
		r.log.Debugf("add: %d", key)
		return
	}
	r.stats.Replaces += 1
	r.log.Debugf("add: %d replaced existing element", key)
}

func (r *Replay) remove(key Key) {
	_, err := r.tree.Remove(key)
	switch {
	case nil == err:
		r.stats.Removes += 1
		r.log.Debugf("remove: %d", key)
	case fault.IsErrNotFound(err):
		r.stats.Misses += 1
		r.log.Infof("remove: %d not in tree", key)
	default:
		// the tree has no other failure
		r.log.Criticalf("remove: %d error: %s", key, err)
	}
}

// count in brackets followed by the in-order elements
func (r *Replay) contents() string {
	s := fmt.Sprintf("[%d]", r.tree.Count())
	if keys := r.tree.Sorted(); len(keys) > 0 {
		s += " " + join(keys)
	}
	return s
}

func join(keys []Key) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = k.String()
	}
	return strings.Join(s, " ")
}
