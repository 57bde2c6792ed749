// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfr

// This file builds the three auxiliary indices the rest of the core
// depends on: a parent map, a next-sibling map scoped to ordered statement
// bodies, and a label index. All three are keyed by Node identity (Go
// pointer identity, since every concrete ast.Node is a pointer), are built
// once per core invocation, and are discarded when that invocation returns.

import (
	"iter"

	"github.com/godoctor/flowrec/ast"
	"github.com/godoctor/flowrec/astutil"
)

// Index holds the parent/sibling/label maps for one core invocation, plus a
// dense identity numbering used to size bitset.BitSet-backed node sets
// elsewhere in this package (see walk.go).
type Index struct {
	root    *ast.Block
	parent  map[ast.Node]ast.Node
	sibling map[ast.Node]ast.Node
	labelOf map[ast.Node]*ast.Label
	id      map[ast.Node]uint
	nextID  uint
}

// buildIndex walks root depth-first and populates a fresh Index. It panics
// with *StructuralError if any node is reached through two distinct
// parents.
func buildIndex(root *ast.Block) *Index {
	idx := &Index{
		root:    root,
		parent:  map[ast.Node]ast.Node{},
		sibling: map[ast.Node]ast.Node{},
		labelOf: map[ast.Node]*ast.Label{},
		id:      map[ast.Node]uint{},
	}
	idx.assignID(root)
	idx.parent[root] = nil
	idx.visit(root)
	return idx
}

func (idx *Index) assignID(n ast.Node) uint {
	if id, ok := idx.id[n]; ok {
		return id
	}
	id := idx.nextID
	idx.nextID++
	idx.id[n] = id
	return id
}

// descend records child's parent as parent and recurses into it, raising
// StructuralError if child already has a parent (visitBody and the Switch
// case of visit make the same check for the nodes they index).
func (idx *Index) descend(child, parent ast.Node) {
	if existing, ok := idx.parent[child]; ok {
		panic(&StructuralError{Node: child, Parent: existing, Other: parent})
	}
	idx.assignID(child)
	idx.parent[child] = parent
	idx.visit(child)
}

func (idx *Index) visit(n ast.Node) {
	switch t := n.(type) {
	case *ast.Block:
		if t.EntryGoto != nil {
			idx.descend(t.EntryGoto, n)
			// EntryGoto has no slot in Body, so visitBody never links it to
			// a successor; without this, falling through the goto (rather
			// than taking it) would wrongly skip straight past the whole
			// body to whatever follows the Block.
			if first, ok := astutil.FirstOrDefault(t.Body); ok {
				idx.sibling[t.EntryGoto] = first
			} else {
				idx.sibling[t.EntryGoto] = nil
			}
		}
		idx.visitBody(t.Body, n)
	case *ast.Expression:
		for _, a := range t.Args {
			idx.descend(a, n)
		}
	case *ast.Label:
		// Leaf; no children.
	case *ast.Condition:
		idx.descend(t.Cond, n)
		idx.descend(t.Then, n)
		if t.Else != nil {
			idx.descend(t.Else, n)
		}
	case *ast.Loop:
		if t.Cond != nil {
			idx.descend(t.Cond, n)
		}
		idx.descend(t.Body, n)
	case *ast.Switch:
		idx.descend(t.Cond, n)
		for _, c := range t.Cases {
			// A CaseBlock is not its own exit-parent frame: falling off
			// the end of any case has the same semantics (forbidden)
			// regardless of which case it is, so the body's statements
			// are indexed with the Switch itself as parent, matching the
			// core's "parent is a Switch -> bottom" exit rule directly.
			// The CaseBlock node's own identity is still recorded (with
			// the Switch as parent) so ancestor queries can see it.
			if existing, ok := idx.parent[c]; ok {
				panic(&StructuralError{Node: c, Parent: existing, Other: n})
			}
			idx.assignID(c)
			idx.parent[c] = n
			idx.visitBody(c.Body, n)
		}
	case *ast.TryCatchBlock:
		idx.descend(t.Try, n)
		for _, c := range t.Catches {
			idx.descend(c, n)
		}
		if t.Finally != nil {
			idx.descend(t.Finally, n)
		}
	case *ast.CatchBlock:
		idx.descend(t.Body, n)
	default:
		panic(&ast.UnsupportedNodeError{Node: n})
	}
}

// visitBody assigns parent to every element of an ordered statement body
// (a Block's or CaseBlock's), links each element to its successor, and
// records the label index for the element immediately following a Label.
func (idx *Index) visitBody(body []ast.Node, parent ast.Node) {
	var prevLabel *ast.Label
	for i, n := range body {
		if existing, ok := idx.parent[n]; ok {
			panic(&StructuralError{Node: n, Parent: existing, Other: parent})
		}
		idx.assignID(n)
		idx.parent[n] = parent
		if i+1 < len(body) {
			idx.sibling[n] = body[i+1]
		} else {
			idx.sibling[n] = nil
		}
		if prevLabel != nil {
			idx.labelOf[n] = prevLabel
		}
		if lbl, ok := n.(*ast.Label); ok {
			prevLabel = lbl
		} else {
			prevLabel = nil
		}
		idx.visit(n)
	}
}

// Parent returns n's structural parent and true, or (nil, true) if n is the
// indexed root, or (nil, false) if n was never indexed.
func (idx *Index) Parent(n ast.Node) (ast.Node, bool) {
	p, ok := idx.parent[n]
	return p, ok
}

// NextSibling returns the node immediately following n within its ordered
// body, or (nil, true) if n is the last element, or (nil, false) if n does
// not belong to any indexed ordered body.
func (idx *Index) NextSibling(n ast.Node) (ast.Node, bool) {
	s, ok := idx.sibling[n]
	return s, ok
}

// LabelBefore returns the Label immediately preceding n in its body, if
// any.
func (idx *Index) LabelBefore(n ast.Node) (*ast.Label, bool) {
	l, ok := idx.labelOf[n]
	return l, ok
}

// Count returns the number of distinct nodes this Index knows about, for
// sizing identity-indexed bitsets.
func (idx *Index) Count() uint { return idx.nextID }

// ID returns n's dense identity number, assigned the first time the index
// builder reached it. Used to key bitset.BitSet-backed sets by identity
// instead of allocating a map per walker call.
func (idx *Index) ID(n ast.Node) (uint, bool) {
	id, ok := idx.id[n]
	return id, ok
}

// Ancestors yields n's parent, grandparent, and so on up to (but not
// including) the sentinel root parent. It is a lazy, non-restartable
// sequence: consumers either range over it and break on the first match, or
// materialize it with astutil.ToList when they need the full chain (only
// tryChain, below, does -- resolveGoto in walk.go needs two complete chains
// to find their common prefix).
func (idx *Index) Ancestors(n ast.Node) iter.Seq[ast.Node] {
	return func(yield func(ast.Node) bool) {
		cur, ok := idx.Parent(n)
		for ok && cur != nil {
			if !yield(cur) {
				return
			}
			cur, ok = idx.Parent(cur)
		}
	}
}

// firstAncestor returns the nearest ancestor of n assignable to T, the way
// every "find the enclosing X" query in this core is phrased.
func firstAncestor[T ast.Node](idx *Index, n ast.Node) (T, bool) {
	var zero T
	for cur := range idx.Ancestors(n) {
		if v, ok := any(cur).(T); ok {
			return v, true
		}
	}
	return zero, false
}

// ancestorsOfType yields every ancestor of n assignable to T, innermost
// first. Used where more than one enclosing TryCatchBlock must be
// considered (the jump simplifier's implicit-finally test).
func ancestorsOfType[T ast.Node](idx *Index, n ast.Node) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := range idx.Ancestors(n) {
			if v, ok := any(cur).(T); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// enclosingLoopOrSwitch returns the innermost enclosing *ast.Loop or
// *ast.Switch, whichever comes first.
func enclosingLoopOrSwitch(idx *Index, n ast.Node) (ast.Node, bool) {
	for cur := range idx.Ancestors(n) {
		switch cur.(type) {
		case *ast.Loop, *ast.Switch:
			return cur, true
		}
	}
	return nil, false
}

// tryChain materializes the chain of *ast.TryCatchBlock ancestors of n, in
// root-to-node order. This is the one ancestor query this core needs as a
// list rather than consumed lazily, since it must compare two such chains
// for a common prefix.
func tryChain(idx *Index, n ast.Node) []*ast.TryCatchBlock {
	chain := astutil.ToList(ancestorsOfType[*ast.TryCatchBlock](idx, n))
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
