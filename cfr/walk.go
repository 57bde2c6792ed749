// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfr

// This file implements the enter/exit walker: "if control is currently at
// node N, what is the next semantically meaningful node that would execute,
// either entering N or having just exited it." It is pure with respect to
// the tree and uses a per-call bitset to break cycles -- a repeated Enter
// returns bottom (nil), signalling an infinite goto cycle rather than
// recursing forever.

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/godoctor/flowrec/ast"
	"github.com/godoctor/flowrec/astutil"
)

// visited is the walker's per-query cycle guard. Nodes are identified by
// the dense id the index assigned them, the same numbering
// analysis/dataflow-style gen/kill bitsets elsewhere in this codebase use
// for block sets -- here it is one bit per Node instead of one bit per
// basic block.
type visited struct {
	idx *Index
	set *bitset.BitSet
}

func newVisited(idx *Index) *visited {
	return &visited{idx: idx, set: bitset.New(idx.Count())}
}

// enterOnce marks n as entered and reports whether it was already marked
// (a cycle).
func (v *visited) enterOnce(n ast.Node) (repeated bool) {
	id, ok := v.idx.ID(n)
	if !ok {
		return false
	}
	if v.set.Test(id) {
		return true
	}
	v.set.Set(id)
	return false
}

// Enter computes the first leaf node control reaches when n is entered.
func Enter(idx *Index, n ast.Node, v *visited) ast.Node {
	if n == nil {
		return nil
	}
	if v.enterOnce(n) {
		return nil
	}
	switch t := n.(type) {
	case *ast.Label:
		return Exit(idx, t, v)
	case *ast.Expression:
		if t.Op == ast.OpGoto {
			operand, _ := astutil.MatchGetOperand(t, ast.OpGoto)
			label, _ := operand.(*ast.Label)
			return resolveGoto(idx, t, label, v)
		}
		return t
	case *ast.Block:
		if t.EntryGoto != nil {
			return Enter(idx, t.EntryGoto, v)
		}
		if first, ok := astutil.FirstOrDefault(t.Body); ok {
			return Enter(idx, first, v)
		}
		return Exit(idx, t, v)
	case *ast.Condition:
		return t.Cond
	case *ast.Loop:
		if t.Cond != nil {
			return t.Cond
		}
		return Enter(idx, t.Body, v)
	case *ast.TryCatchBlock:
		return t
	case *ast.Switch:
		return t.Cond
	default:
		panic(&ast.UnsupportedNodeError{Node: n})
	}
}

// Exit computes the next node executed once n completes.
func Exit(idx *Index, n ast.Node, v *visited) ast.Node {
	parent, ok := idx.Parent(n)
	if !ok || parent == nil {
		return nil
	}
	switch parent.(type) {
	case *ast.Block:
		if sib, ok := idx.NextSibling(n); ok && sib != nil {
			return Enter(idx, sib, v)
		}
		return Exit(idx, parent, v)
	case *ast.Condition:
		return Exit(idx, parent, v)
	case *ast.TryCatchBlock, *ast.CatchBlock:
		return Exit(idx, parent, v)
	case *ast.Switch:
		// Falling off the end of a case is not permitted; it must be
		// broken explicitly. A case body's statements are indexed with
		// the Switch itself as their exit-parent (see index.go), so this
		// one rule covers every case arm.
		if sib, ok := idx.NextSibling(n); ok && sib != nil {
			return Enter(idx, sib, v)
		}
		return nil
	case *ast.Loop:
		return Enter(idx, parent, v)
	default:
		panic(&ast.UnsupportedNodeError{Node: parent})
	}
}

// resolveGoto implements the goto-resolution rules a try/finally frontier
// imposes on an otherwise ordinary Enter. finally semantics require that
// control never enter a try region from a sideways jump, because the
// implicit stack of "tried frames" on entry would then differ from what the
// try's own machinery expects; this is the one place that invariant is
// enforced.
func resolveGoto(idx *Index, gotoExpr *ast.Expression, label *ast.Label, v *visited) ast.Node {
	if label == nil {
		return nil
	}
	sourceTry, sourceHas := firstAncestor[*ast.TryCatchBlock](idx, gotoExpr)
	targetTry, targetHas := firstAncestor[*ast.TryCatchBlock](idx, label)
	if sourceHas == targetHas && (!sourceHas || sourceTry == targetTry) {
		return Enter(idx, label, v)
	}

	sourceChain := tryChain(idx, gotoExpr)
	targetChain := tryChain(idx, label)
	common := commonPrefixLen(sourceChain, targetChain)
	if common == len(targetChain) {
		// Every try ancestor of the label is already an ancestor of the
		// goto; no new region is being entered.
		return Enter(idx, label, v)
	}

	enteredTry := targetChain[common]
	if !isAtTryEntry(enteredTry.Try, label) {
		return nil
	}
	return enteredTry
}

func commonPrefixLen(a, b []*ast.TryCatchBlock) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// isAtTryEntry reports whether label is the first substantive statement of
// body, walking into nested try-bodies and skipping Nops and Labels along
// the way. This is the permissibility test a sideways goto into a
// TryCatchBlock must pass.
func isAtTryEntry(body *ast.Block, label *ast.Label) bool {
descend:
	for {
		for _, n := range body.Body {
			switch t := n.(type) {
			case *ast.Label:
				if t == label {
					return true
				}
			case *ast.Expression:
				if t.Op != ast.OpNop {
					return false
				}
			case *ast.TryCatchBlock:
				body = t.Try
				continue descend
			default:
				return false
			}
		}
		return false
	}
}
