// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astutil

import (
	"iter"
	"testing"

	"github.com/godoctor/flowrec/ast"
)

func TestMatch(t *testing.T) {
	g := ast.NewGoto(ast.NewLabel("L"))
	if !Match(g, ast.OpGoto) {
		t.Fatal("Match(goto, OpGoto) = false")
	}
	if Match(g, ast.OpNop) {
		t.Fatal("Match(goto, OpNop) = true")
	}
	if Match(ast.NewLabel("L"), ast.OpGoto) {
		t.Fatal("Match(label, OpGoto) = true")
	}
}

func TestMatchGetOperand(t *testing.T) {
	label := ast.NewLabel("L")
	g := ast.NewGoto(label)
	operand, ok := MatchGetOperand(g, ast.OpGoto)
	if !ok || operand != ast.Node(label) {
		t.Fatalf("MatchGetOperand(goto, OpGoto) = (%v, %v), want (label, true)", operand, ok)
	}
	if _, ok := MatchGetOperand(g, ast.OpNop); ok {
		t.Fatal("MatchGetOperand(goto, OpNop) reported ok")
	}
}

func TestMatchLast(t *testing.T) {
	b := ast.NewBlock(ast.NewOpaque(ast.OpOpaque), ast.NewLoopOrSwitchBreak())
	if !MatchLast(b.Body, ast.OpLoopOrSwitchBreak) {
		t.Fatal("MatchLast did not find the trailing break")
	}
	if MatchLast(ast.NewBlock().Body, ast.OpLoopOrSwitchBreak) {
		t.Fatal("MatchLast on an empty body returned true")
	}
}

func TestFirstAndLastOrDefault(t *testing.T) {
	empty := []int{}
	if _, ok := FirstOrDefault(empty); ok {
		t.Fatal("FirstOrDefault(empty) reported ok")
	}
	if _, ok := LastOrDefault(empty); ok {
		t.Fatal("LastOrDefault(empty) reported ok")
	}

	s := []int{1, 2, 3}
	if v, ok := FirstOrDefault(s); !ok || v != 1 {
		t.Fatalf("FirstOrDefault(s) = (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := LastOrDefault(s); !ok || v != 3 {
		t.Fatalf("LastOrDefault(s) = (%d, %v), want (3, true)", v, ok)
	}
}

func TestToList(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	}
	got := ToList[int](iter.Seq[int](seq))
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("ToList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToList = %v, want %v", got, want)
		}
	}
}
