// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import "testing"

func TestChildrenBlock(t *testing.T) {
	entry := NewGoto(NewLabel("L0"))
	stmt := NewOpaque(OpOpaque)
	b := &Block{Body: []Node{stmt}, EntryGoto: entry}
	got := Children(b)
	if len(got) != 2 || got[0] != Node(entry) || got[1] != Node(stmt) {
		t.Fatalf("Children(Block) = %v, want [entry, stmt]", got)
	}

	empty := NewBlock()
	if got := Children(empty); got == nil {
		t.Fatalf("Children(empty Block) = nil, want empty non-nil slice")
	} else if len(got) != 0 {
		t.Fatalf("Children(empty Block) = %v, want empty", got)
	}
}

func TestChildrenExpression(t *testing.T) {
	a1 := NewOpaque(OpOpaque)
	a2 := NewOpaque(OpOpaque)
	e := NewOpaque(OpOpaque, a1, a2)
	got := Children(e)
	if len(got) != 2 || got[0] != Node(a1) || got[1] != Node(a2) {
		t.Fatalf("Children(Expression) = %v, want [a1, a2]", got)
	}

	leaf := NewNop()
	if got := Children(leaf); len(got) != 0 {
		t.Fatalf("Children(leaf Expression) = %v, want empty", got)
	}
}

func TestChildrenLabel(t *testing.T) {
	if got := Children(NewLabel("L")); got != nil {
		t.Fatalf("Children(Label) = %v, want nil", got)
	}
}

func TestChildrenCondition(t *testing.T) {
	cond := NewOpaque(OpOpaque)
	then := NewBlock()
	c := NewCondition(cond, then, nil)
	got := Children(c)
	if len(got) != 2 || got[0] != Node(cond) || got[1] != Node(then) {
		t.Fatalf("Children(Condition, no else) = %v", got)
	}

	els := NewBlock()
	c2 := NewCondition(cond, then, els)
	got2 := Children(c2)
	if len(got2) != 3 || got2[2] != Node(els) {
		t.Fatalf("Children(Condition, with else) = %v", got2)
	}
}

func TestChildrenLoop(t *testing.T) {
	body := NewBlock()
	unconditional := NewLoop(nil, body)
	got := Children(unconditional)
	if len(got) != 1 || got[0] != Node(body) {
		t.Fatalf("Children(unconditional Loop) = %v", got)
	}

	cond := NewOpaque(OpOpaque)
	conditional := NewLoop(cond, body)
	got2 := Children(conditional)
	if len(got2) != 2 || got2[0] != Node(cond) || got2[1] != Node(body) {
		t.Fatalf("Children(conditional Loop) = %v", got2)
	}
}

func TestChildrenSwitch(t *testing.T) {
	cond := NewOpaque(OpOpaque)
	c1 := NewCaseBlock(nil, 1)
	c2 := NewCaseBlock(nil)
	sw := NewSwitch(cond, c1, c2)
	got := Children(sw)
	if len(got) != 3 || got[0] != Node(cond) || got[1] != Node(c1) || got[2] != Node(c2) {
		t.Fatalf("Children(Switch) = %v", got)
	}
}

func TestChildrenCaseBlock(t *testing.T) {
	stmt := NewOpaque(OpOpaque)
	c := NewCaseBlock([]Node{stmt}, 1, 2)
	got := Children(c)
	if len(got) != 1 || got[0] != Node(stmt) {
		t.Fatalf("Children(CaseBlock) = %v", got)
	}
	if !NewCaseBlock(nil).IsDefault() {
		t.Fatalf("CaseBlock with no values should be default")
	}
	if c.IsDefault() {
		t.Fatalf("CaseBlock with values should not be default")
	}
}

func TestChildrenTryCatchBlock(t *testing.T) {
	try := NewBlock()
	catch := NewCatchBlock("Exception", NewBlock())
	finally := NewBlock()
	tcb := NewTryCatchBlock(try, finally, catch)
	got := Children(tcb)
	if len(got) != 3 || got[0] != Node(try) || got[1] != Node(catch) || got[2] != Node(finally) {
		t.Fatalf("Children(TryCatchBlock, with finally) = %v", got)
	}

	noFinally := NewTryCatchBlock(try, nil, catch)
	got2 := Children(noFinally)
	if len(got2) != 2 {
		t.Fatalf("Children(TryCatchBlock, no finally) = %v", got2)
	}
}

func TestChildrenCatchBlock(t *testing.T) {
	body := NewBlock()
	c := NewCatchBlock("RuntimeException", body)
	got := Children(c)
	if len(got) != 1 || got[0] != Node(body) {
		t.Fatalf("Children(CatchBlock) = %v", got)
	}
}

type fakeNode struct{ base }

func TestChildrenUnsupportedPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Children(unsupported variant) did not panic")
		}
		if _, ok := r.(*UnsupportedNodeError); !ok {
			t.Fatalf("recovered %T, want *UnsupportedNodeError", r)
		}
	}()
	Children(&fakeNode{})
}
