// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// Children returns the direct structural children of n, in the order the
// index builder (package cfr) should visit them. A Label returns nil; an
// Expression with no Args returns an empty, non-nil slice.
//
// This is the one place in the package that must be kept exhaustive: adding
// a new Node variant without extending this switch makes Children panic
// with *UnsupportedNodeError when it reaches that variant.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Block:
		children := make([]Node, 0, len(t.Body)+1)
		if t.EntryGoto != nil {
			children = append(children, t.EntryGoto)
		}
		children = append(children, t.Body...)
		return children
	case *Expression:
		children := make([]Node, len(t.Args))
		for i, a := range t.Args {
			children[i] = a
		}
		return children
	case *Label:
		return nil
	case *Condition:
		children := []Node{t.Cond, t.Then}
		if t.Else != nil {
			children = append(children, t.Else)
		}
		return children
	case *Loop:
		children := make([]Node, 0, 2)
		if t.Cond != nil {
			children = append(children, t.Cond)
		}
		children = append(children, t.Body)
		return children
	case *Switch:
		children := make([]Node, 0, len(t.Cases)+1)
		children = append(children, t.Cond)
		for _, c := range t.Cases {
			children = append(children, c)
		}
		return children
	case *CaseBlock:
		return append([]Node(nil), t.Body...)
	case *TryCatchBlock:
		children := make([]Node, 0, len(t.Catches)+2)
		children = append(children, t.Try)
		for _, c := range t.Catches {
			children = append(children, c)
		}
		if t.Finally != nil {
			children = append(children, t.Finally)
		}
		return children
	case *CatchBlock:
		return []Node{t.Body}
	default:
		panic(&UnsupportedNodeError{Node: n})
	}
}

// UnsupportedNodeError is raised when Children (and, transitively, the
// walker in package cfr) reaches a Node variant it does not recognize. It
// indicates a new variant was added to this package without updating every
// exhaustive switch over Node that depends on it.
type UnsupportedNodeError struct {
	Node Node
}

func (e *UnsupportedNodeError) Error() string {
	return "ast: unsupported node variant"
}
