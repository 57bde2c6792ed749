// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfr implements the control-flow reconstruction core of a
// bytecode-to-source decompiler: it eliminates synthetic Goto jumps from a
// structured intermediate AST (package ast) by rewriting them into
// fall-through, break, or continue, and prunes the dead scaffolding left
// behind (unreachable labels, no-ops, redundant terminators, empty switch
// arms, trailing empty returns).
//
// The two phases -- jump simplifier and dead-code sweeper -- are exposed
// through two entry points, RemoveGotos and RemoveRedundantCode. The jump
// simplifier works on parent/sibling/label indices built fresh on every
// invocation; the sweeper needs none. Both
// mutate their argument tree in place and accept an optional *diag.Log;
// passing nil is a complete no-op on the logging side.
package cfr

import (
	"github.com/godoctor/flowrec/ast"
	"github.com/godoctor/flowrec/diag"
)

// RemoveGotos runs the jump simplifier to fixpoint over root, then hands off
// to RemoveRedundantCode to sweep the result. If the sweeper's
// unreachable-return step removes anything, the whole core re-runs: further
// simplifications can become available once dead statements are gone.
//
// RemoveGotos panics with *StructuralError or *UnsupportedNodeError if root
// is structurally malformed (see package ast and spec.md §7); neither is
// recovered here.
func RemoveGotos(root *ast.Block, log *diag.Log) Stats {
	var stats Stats
	removeGotos(root, log, &stats)
	log.Logf(diag.INFO, "cfr: %s", stats)
	return stats
}

func removeGotos(root *ast.Block, log *diag.Log, stats *Stats) {
	idx := buildIndex(root)
	if simplifyJumps(idx, root, stats) {
		log.Logf(diag.INFO, "cfr: jump simplifier rewrote %d goto(s)",
			stats.GotosFoldedToNop+stats.GotosFoldedToBreak+stats.GotosFoldedToContinue)
	}
	removeRedundantCode(root, log, stats)
}

// RemoveRedundantCode runs one pass of the dead-code sweeper over root
// (spec.md §4.4): it does not re-run the jump simplifier itself, except that
// when its unreachable-return step finds something to remove, it re-runs the
// whole core (simplifier and sweeper, as RemoveGotos does), since that step
// can expose new fall-through, break or continue opportunities the
// simplifier has not yet seen.
func RemoveRedundantCode(root *ast.Block, log *diag.Log) (changed bool, stats Stats) {
	changed = removeRedundantCode(root, log, &stats)
	log.Logf(diag.INFO, "cfr: %s", stats)
	return changed, stats
}

func removeRedundantCode(root *ast.Block, log *diag.Log, stats *Stats) bool {
	changed, rerun := sweepDeadCode(root, stats)
	if changed {
		log.Logf(diag.INFO, "cfr: dead-code sweeper purged %d label(s), %d nop(s), %d leave(s)",
			stats.LabelsPurged, stats.NopsPurged, stats.LeavesPurged)
	}
	if rerun {
		stats.Reruns++
		log.Logf(diag.INFO, "cfr: re-running core after unreachable-return removal")
		removeGotos(root, log, stats)
		changed = true
	}
	return changed
}
