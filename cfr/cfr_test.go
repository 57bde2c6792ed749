// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfr

// These tests build small trees by hand -- there is no parser in scope --
// and exercise the six concrete end-to-end scenarios plus the idempotence
// guarantee, the way extras/cfg_test.go and analysis/dataflow/dataflow_test.go
// assert structural shape directly rather than through a golden-file diff.

import (
	"testing"

	"github.com/godoctor/flowrec/ast"
)

// opExpr returns a fresh, opaque, non-branching expression standing in for
// an ordinary computation the core never looks inside.
func opExpr() *ast.Expression {
	return ast.NewOpaque(ast.OpOpaque)
}

func TestDirectFallThrough(t *testing.T) {
	l0 := ast.NewLabel("L0")
	a := opExpr()
	root := ast.NewBlock(ast.NewGoto(l0), l0, a)

	RemoveGotos(root, nil)

	if len(root.Body) != 1 || root.Body[0] != ast.Node(a) {
		t.Fatalf("got body %v, want [A]", root.Body)
	}
}

func TestEntryGotoFallThroughIsPurged(t *testing.T) {
	// inner's EntryGoto targets inner's own first statement, the label
	// right where inner.Body already falls into it -- a pure no-op splice
	// a construction-time collaborator left in front of the body.
	label := ast.NewLabel("L")
	a := opExpr()
	inner := &ast.Block{Body: []ast.Node{label, a}, EntryGoto: ast.NewGoto(label)}
	root := ast.NewBlock(inner)

	RemoveGotos(root, nil)

	if inner.EntryGoto != nil {
		t.Fatalf("inner.EntryGoto = %v, want nil (folded to Nop, then purged)", inner.EntryGoto)
	}
	if len(inner.Body) != 1 || inner.Body[0] != ast.Node(a) {
		t.Fatalf("inner.Body = %v, want [A] (L loses its only reference once EntryGoto folds)", inner.Body)
	}
}

func TestLoopBreak(t *testing.T) {
	l1 := ast.NewLabel("L1")
	cond := opExpr()
	thenBlock := ast.NewBlock(ast.NewGoto(l1))
	elseBlock := ast.NewBlock()
	condition := ast.NewCondition(cond, thenBlock, elseBlock)
	a := opExpr()
	loopBody := ast.NewBlock(condition, a)
	loop := ast.NewLoop(nil, loopBody)
	b := opExpr()
	root := ast.NewBlock(loop, l1, b)

	RemoveGotos(root, nil)

	if len(root.Body) != 2 {
		t.Fatalf("got %d top-level statements, want 2 (loop, B); body = %v", len(root.Body), root.Body)
	}
	if root.Body[0] != ast.Node(loop) {
		t.Fatalf("first statement is not the loop: %v", root.Body[0])
	}
	if root.Body[1] != ast.Node(b) {
		t.Fatalf("second statement is not B: %v", root.Body[1])
	}
	rewritten, ok := thenBlock.Body[0].(*ast.Expression)
	if !ok || rewritten.Op != ast.OpLoopOrSwitchBreak {
		t.Fatalf("then-branch statement = %v, want LoopOrSwitchBreak", thenBlock.Body[0])
	}
}

func TestLoopContinue(t *testing.T) {
	// L_head conceptually labels the loop's re-entry point; the goto sits
	// at the tail of the loop body, the position a "continue" compiles
	// to. Whichever rule the simplifier applies first (fall-through or
	// continue collapse to the same thing here, since both target the
	// loop's own head), the sweeper's trailing-continue/nop purge leaves
	// the same final shape.
	lHead := ast.NewLabel("L_head")
	cond := opExpr()
	a := opExpr()
	loopBody := ast.NewBlock(a, ast.NewGoto(lHead))
	loop := ast.NewLoop(cond, loopBody)
	root := ast.NewBlock(lHead, loop)

	RemoveGotos(root, nil)

	if len(loopBody.Body) != 1 || loopBody.Body[0] != ast.Node(a) {
		t.Fatalf("loop body = %v, want [A]", loopBody.Body)
	}
}

func TestSwitchCaseCleanup(t *testing.T) {
	a := opExpr()
	case1 := ast.NewCaseBlock([]ast.Node{a, ast.NewLoopOrSwitchBreak()}, 1)
	case2 := ast.NewCaseBlock([]ast.Node{ast.NewLoopOrSwitchBreak()}, 2)
	sw := ast.NewSwitch(opExpr(), case1, case2)
	root := ast.NewBlock(sw)

	RemoveRedundantCode(root, nil)

	if len(sw.Cases) != 1 || sw.Cases[0] != case1 {
		t.Fatalf("cases = %v, want [case1]", sw.Cases)
	}
	if len(case1.Body) != 2 {
		t.Fatalf("case1 body = %v, want unchanged [A, break] (break is required, A is not unconditional)", case1.Body)
	}
}

func TestUnreachableReturn(t *testing.T) {
	ret42 := ast.NewReturn(opExpr())
	retEmpty := ast.NewReturn(nil)
	root := ast.NewBlock(ret42, retEmpty)

	RemoveRedundantCode(root, nil)

	if len(root.Body) != 1 || root.Body[0] != ast.Node(ret42) {
		t.Fatalf("body = %v, want [Return(42)]", root.Body)
	}
}

func TestJumpIntoTryIsRefused(t *testing.T) {
	lInside := ast.NewLabel("L_inside")
	a := opExpr()
	b := opExpr()
	tryBody := ast.NewBlock(a, lInside, b)
	tcb := ast.NewTryCatchBlock(tryBody, nil, ast.NewCatchBlock("Exception", ast.NewBlock()))
	gotoInside := ast.NewGoto(lInside)
	root := ast.NewBlock(gotoInside, tcb)

	RemoveGotos(root, nil)

	if gotoInside.Op != ast.OpGoto {
		t.Fatalf("goto was rewritten to %v, want it left as Goto", gotoInside.Op)
	}
	if len(root.Body) != 2 || root.Body[0] != ast.Node(gotoInside) || root.Body[1] != ast.Node(tcb) {
		t.Fatalf("tree shape changed: %v", root.Body)
	}
}

// buildIdempotenceFixture returns a tree exercising several rewrite rules at
// once: a direct fall-through, a loop break, and an unreachable return.
func buildIdempotenceFixture() *ast.Block {
	l0 := ast.NewLabel("L0")
	l1 := ast.NewLabel("L1")

	cond := opExpr()
	thenBlock := ast.NewBlock(ast.NewGoto(l1))
	condition := ast.NewCondition(cond, thenBlock, ast.NewBlock())
	loopBody := ast.NewBlock(condition, opExpr())
	loop := ast.NewLoop(nil, loopBody)

	return ast.NewBlock(
		ast.NewGoto(l0),
		l0,
		loop,
		l1,
		ast.NewReturn(opExpr()),
		ast.NewReturn(nil),
	)
}

func TestIdempotence(t *testing.T) {
	root := buildIdempotenceFixture()
	RemoveGotos(root, nil)
	before := len(root.Body)

	again := RemoveGotos(root, nil)

	if again != (Stats{}) {
		t.Fatalf("second RemoveGotos run found more to rewrite: %+v", again)
	}
	if len(root.Body) != before {
		t.Fatalf("second RemoveGotos run changed body length: %d -> %d", before, len(root.Body))
	}
}
