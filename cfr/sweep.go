// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfr

// This file implements the dead-code sweeper (spec.md §4.4): once the jump
// simplifier stabilizes, purge unreferenced labels and no-ops, trim
// redundant trailing continues/breaks/returns, and drop switch cases that
// reduce to nothing but a break. Unlike the simplifier, none of this needs
// the parent/sibling index -- every step is a local, bottom-up tree rewrite.

import (
	"github.com/godoctor/flowrec/ast"
	"github.com/godoctor/flowrec/astutil"
)

// sweepDeadCode performs one pass of every step in §4.4 over root. It
// reports whether anything changed, and separately whether the
// unreachable-return step (step 6) removed anything -- the one condition
// that requires the whole core to re-run (step 7).
func sweepDeadCode(root *ast.Block, stats *Stats) (changed bool, rerun bool) {
	live := collectLiveLabels(root)
	if purgeDead(root, live, stats) {
		changed = true
	}
	if removeTrailingContinues(root, stats) {
		changed = true
	}
	if cleanupSwitches(root, stats) {
		changed = true
	}
	if removeTrailingEmptyReturn(root, stats) {
		changed = true
	}
	if removeUnreachableReturns(root, stats) {
		changed = true
		rerun = true
	}
	return changed, rerun
}

// collectLiveLabels returns the set of Labels targeted by at least one
// branch expression anywhere in the tree, except that a Goto targeting the
// first statement of a TryCatchBlock's Finally region is not counted: such
// jumps are artifacts of a later lowering step and would otherwise keep an
// eliminable label alive forever.
func collectLiveLabels(root ast.Node) map[*ast.Label]bool {
	heads := finallyHeadLabels(root)
	live := map[*ast.Label]bool{}
	forEachNode(root, func(n ast.Node) {
		e, ok := n.(*ast.Expression)
		if !ok || !e.IsBranch() {
			return
		}
		for _, lbl := range e.Targets() {
			if lbl == nil {
				continue
			}
			if e.Op == ast.OpGoto && heads[lbl] {
				continue
			}
			live[lbl] = true
		}
	})
	return live
}

// finallyHeadLabels returns every Label that is the first statement of some
// TryCatchBlock's Finally block.
func finallyHeadLabels(root ast.Node) map[*ast.Label]bool {
	heads := map[*ast.Label]bool{}
	forEachNode(root, func(n ast.Node) {
		t, ok := n.(*ast.TryCatchBlock)
		if !ok || t.Finally == nil || len(t.Finally.Body) == 0 {
			return
		}
		if lbl, ok := t.Finally.Body[0].(*ast.Label); ok {
			heads[lbl] = true
		}
	})
	return heads
}

// purgeDead removes every Nop, Leave, and non-live Label from every ordered
// body (Block.Body, CaseBlock.Body) reachable from n, in place.
func purgeDead(n ast.Node, live map[*ast.Label]bool, stats *Stats) bool {
	if n == nil {
		return false
	}
	changed := false
	switch t := n.(type) {
	case *ast.Block:
		if t.EntryGoto != nil && astutil.Match(t.EntryGoto, ast.OpNop) {
			// EntryGoto has no slot in Body (see index.go), so a fold to
			// Nop here would otherwise dangle forever: filterDeadBody
			// never looks at this field, and a non-nil Nop EntryGoto
			// still short-circuits Enter(Block) on every later walk.
			t.EntryGoto = nil
			stats.NopsPurged++
			changed = true
		}
		if newBody, did := filterDeadBody(t.Body, live, stats); did {
			t.Body = newBody
			changed = true
		}
	case *ast.CaseBlock:
		if newBody, did := filterDeadBody(t.Body, live, stats); did {
			t.Body = newBody
			changed = true
		}
	}
	for _, c := range ast.Children(n) {
		if purgeDead(c, live, stats) {
			changed = true
		}
	}
	return changed
}

func filterDeadBody(body []ast.Node, live map[*ast.Label]bool, stats *Stats) ([]ast.Node, bool) {
	var out []ast.Node
	changed := false
	for _, n := range body {
		switch t := n.(type) {
		case *ast.Expression:
			switch t.Op {
			case ast.OpNop:
				stats.NopsPurged++
				changed = true
				continue
			case ast.OpLeave:
				stats.LeavesPurged++
				changed = true
				continue
			}
		case *ast.Label:
			if !live[t] {
				stats.LabelsPurged++
				changed = true
				continue
			}
		}
		out = append(out, n)
	}
	if !changed {
		return body, false
	}
	return out, true
}

// removeTrailingContinues drops a trailing LoopContinue from every Loop
// body: the iteration happens anyway by falling off the end of the body.
func removeTrailingContinues(root ast.Node, stats *Stats) bool {
	changed := false
	forEachNode(root, func(n ast.Node) {
		loop, ok := n.(*ast.Loop)
		if !ok {
			return
		}
		if !astutil.MatchLast(loop.Body.Body, ast.OpLoopContinue) {
			return
		}
		loop.Body.Body = loop.Body.Body[:len(loop.Body.Body)-1]
		stats.TrailingContinuesRemoved++
		changed = true
	})
	return changed
}

// cleanupSwitches implements §4.4 step 4: redundant final breaks are
// dropped case by case, then whole cases that reduce to nothing but a
// break are removed when there is no default (or the default is itself
// break-only), since such a case is indistinguishable from falling through
// to the switch's natural exit.
func cleanupSwitches(root ast.Node, stats *Stats) bool {
	changed := false
	forEachNode(root, func(n ast.Node) {
		sw, ok := n.(*ast.Switch)
		if !ok {
			return
		}
		for _, c := range sw.Cases {
			if len(c.Body) < 2 || !astutil.MatchLast(c.Body, ast.OpLoopOrSwitchBreak) {
				continue
			}
			penultimate := c.Body[len(c.Body)-2]
			if isUnconditionalControlFlow(penultimate) {
				c.Body = c.Body[:len(c.Body)-1]
				stats.SwitchBreaksRemoved++
				changed = true
			}
		}

		var defaultCase *ast.CaseBlock
		for _, c := range sw.Cases {
			if c.IsDefault() {
				defaultCase = c
				break
			}
		}
		if defaultCase != nil && !isBreakOnlyBody(defaultCase.Body) {
			return
		}

		var kept []*ast.CaseBlock
		for _, c := range sw.Cases {
			if isBreakOnlyBody(c.Body) {
				stats.SwitchCasesRemoved++
				changed = true
				continue
			}
			kept = append(kept, c)
		}
		sw.Cases = kept
	})
	return changed
}

// removeTrailingEmptyReturn drops a no-argument Return closing the method
// body: falling off the end does the same thing.
func removeTrailingEmptyReturn(root *ast.Block, stats *Stats) bool {
	if !astutil.MatchLast(root.Body, ast.OpReturn) {
		return false
	}
	last, _ := astutil.LastOrDefault(root.Body)
	if last.(*ast.Expression).HasValue() {
		return false
	}
	root.Body = root.Body[:len(root.Body)-1]
	stats.TrailingReturnsRemoved++
	return true
}

// removeUnreachableReturns implements §4.4 step 6: a Return immediately
// following any unconditional control-flow statement can never execute.
func removeUnreachableReturns(root ast.Node, stats *Stats) bool {
	changed := false
	forEachNode(root, func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Block:
			if newBody, did := pruneUnreachableReturns(t.Body, stats); did {
				t.Body = newBody
				changed = true
			}
		case *ast.CaseBlock:
			if newBody, did := pruneUnreachableReturns(t.Body, stats); did {
				t.Body = newBody
				changed = true
			}
		}
	})
	return changed
}

func pruneUnreachableReturns(body []ast.Node, stats *Stats) ([]ast.Node, bool) {
	var out []ast.Node
	changed := false
	for i, n := range body {
		if i > 0 && isUnconditionalControlFlow(body[i-1]) && astutil.Match(n, ast.OpReturn) {
			stats.UnreachableReturnsRemoved++
			changed = true
			continue
		}
		out = append(out, n)
	}
	if !changed {
		return body, false
	}
	return out, true
}

// forEachNode visits n and every node reachable from it, pre-order.
func forEachNode(n ast.Node, f func(ast.Node)) {
	if n == nil {
		return
	}
	f(n)
	for _, c := range ast.Children(n) {
		forEachNode(c, f)
	}
}

func isUnconditionalControlFlow(n ast.Node) bool {
	e, ok := n.(*ast.Expression)
	return ok && e.IsUnconditionalControlFlow()
}

func isBreakOnlyBody(body []ast.Node) bool {
	return len(body) == 1 && astutil.MatchLast(body, ast.OpLoopOrSwitchBreak)
}
