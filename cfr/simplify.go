// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfr

// This file implements the jump simplifier: repeated sweeps over every Goto
// expression in the tree, each attempting to rewrite the goto to a cheaper
// equivalent (Nop, LoopOrSwitchBreak, LoopContinue) using the enter/exit
// walker in walk.go. A sweep that rewrites nothing ends the fixpoint.

import "github.com/godoctor/flowrec/ast"

// simplifyJumps runs the jump simplifier to fixpoint against idx, which must
// have been built from root. It reports whether any goto was rewritten.
func simplifyJumps(idx *Index, root *ast.Block, stats *Stats) bool {
	changedEver := false
	for {
		gotos := collectGotos(root)
		changedThisSweep := false
		for _, g := range gotos {
			if simplifyOneGoto(idx, g, stats) {
				changedThisSweep = true
			}
		}
		if changedThisSweep {
			changedEver = true
			continue
		}
		return changedEver
	}
}

// simplifyOneGoto applies the five-step test in canonical tie-break order
// (fall-through > implicit-finally > break > continue) to a single Goto
// expression. It reports whether it rewrote g.
func simplifyOneGoto(idx *Index, g *ast.Expression, stats *Stats) bool {
	target := Enter(idx, g, newVisited(idx))
	if target == nil {
		return false
	}

	if exitOfGotoEquals(idx, g, target) {
		foldIntoFallThrough(g, target)
		stats.GotosFoldedToNop++
		return true
	}

	if finallyHeadEquals(idx, g, target) {
		g.BecomeNop()
		g.Ranges().Clear()
		stats.GotosFoldedToNop++
		return true
	}

	if enclosing, ok := enclosingLoopOrSwitch(idx, g); ok {
		if Exit(idx, enclosing, seededVisited(idx, g)) == target {
			g.BecomeBreak()
			stats.GotosFoldedToBreak++
			return true
		}
	}

	if loop, ok := firstAncestor[*ast.Loop](idx, g); ok {
		if Enter(idx, loop, seededVisited(idx, g)) == target {
			g.BecomeContinue()
			stats.GotosFoldedToContinue++
			return true
		}
	}

	return false
}

// seededVisited returns a fresh visited set with g pre-marked, so a
// simplification test's walk cannot loop back through the goto being
// tested.
func seededVisited(idx *Index, g *ast.Expression) *visited {
	v := newVisited(idx)
	v.enterOnce(g)
	return v
}

// exitOfGotoEquals reports whether, with a fresh visited set seeded with g
// itself, exit(g) reaches the same node entering g would have. A goto whose
// natural fall-through successor is the same place it jumps to is a no-op.
func exitOfGotoEquals(idx *Index, g *ast.Expression, target ast.Node) bool {
	return Exit(idx, g, seededVisited(idx, g)) == target
}

// finallyHeadEquals reports whether target is the entry point of some
// TryCatchBlock enclosing g that carries a Finally region -- i.e. whether
// the goto is equivalent to letting control fall naturally into that
// finally block.
func finallyHeadEquals(idx *Index, g *ast.Expression, target ast.Node) bool {
	for try := range ancestorsOfType[*ast.TryCatchBlock](idx, g) {
		if try.Finally == nil {
			continue
		}
		if Enter(idx, try.Finally, seededVisited(idx, g)) == target {
			return true
		}
	}
	return false
}

// foldIntoFallThrough rewrites g into a Nop and migrates its range markers
// to target, if target is itself an expression capable of carrying them.
func foldIntoFallThrough(g *ast.Expression, target ast.Node) {
	if expr, ok := target.(*ast.Expression); ok && expr != g {
		g.Ranges().MoveTo(expr.Ranges())
	} else {
		g.Ranges().Clear()
	}
	g.BecomeNop()
}

// collectGotos returns every *ast.Expression with opcode Goto reachable from
// root, in depth-first document order. Re-collected at the start of every
// simplifier sweep since earlier rewrites in the same sweep can fold one
// goto into another's neighborhood.
func collectGotos(root ast.Node) []*ast.Expression {
	var out []*ast.Expression
	forEachNode(root, func(n ast.Node) {
		if e, ok := n.(*ast.Expression); ok && e.Op == ast.OpGoto {
			out = append(out, e)
		}
	})
	return out
}
