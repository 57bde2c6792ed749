// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// Range is a single source-range marker. What it actually denotes (a byte
// offset pair, a line/column pair, a bytecode instruction index) is up to
// the collaborator that produced it; this core treats Range as an opaque,
// comparable value and only ever unions and clears sets of them.
type Range struct {
	Start, End int
}

// RangeSet is an unordered set of Range markers belonging to one Node. The
// zero value is an empty set ready to use.
type RangeSet struct {
	marks map[Range]struct{}
}

// Add inserts r into the set.
func (rs *RangeSet) Add(r Range) {
	if rs.marks == nil {
		rs.marks = map[Range]struct{}{}
	}
	rs.marks[r] = struct{}{}
}

// Merge absorbs every marker in other into rs. It models a survivor
// expression absorbing the ranges of a node it replaces.
func (rs *RangeSet) Merge(other *RangeSet) {
	if other == nil {
		return
	}
	for r := range other.marks {
		rs.Add(r)
	}
}

// Clear empties the set, e.g. when a Goto is reduced to a bare Nop and its
// own position no longer corresponds to anything in the rewritten tree.
func (rs *RangeSet) Clear() {
	rs.marks = nil
}

// Len reports how many markers the set holds.
func (rs *RangeSet) Len() int { return len(rs.marks) }

// List materializes the set's markers in no particular order.
func (rs *RangeSet) List() []Range {
	out := make([]Range, 0, len(rs.marks))
	for r := range rs.marks {
		out = append(out, r)
	}
	return out
}

// MoveTo transfers every marker from rs to dst and clears rs, as happens
// when a Goto folds into fall-through and its ranges migrate to the
// successor it used to jump to.
func (rs *RangeSet) MoveTo(dst *RangeSet) {
	if dst != nil {
		dst.Merge(rs)
	}
	rs.Clear()
}
