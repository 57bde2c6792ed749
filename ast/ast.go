// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ast defines the structured intermediate tree that the control-flow
// reconstruction core operates on: blocks, conditions, loops, switches,
// try/catch, labels, and the low-level expressions (including synthetic
// Goto jumps) that a decompiler's earlier passes leave behind.
//
// The tree is produced and mutated by external collaborators (the class-file
// parser, type resolver, and the later pretty-printer all live outside this
// module); this package only describes the shape those collaborators agree
// on. Node identity, not structural equality, is what every index in package
// cfr keys on -- two Expressions with identical opcodes and operands are
// still distinct Nodes if they are distinct pointers.
package ast

// Node is implemented by every variant in the tree. All variants carry a set
// of source-range markers; Ranges returns the one belonging to this node.
type Node interface {
	Ranges() *RangeSet
}

// base supplies the RangeSet every concrete Node embeds. It is not exported;
// callers reach ranges through the Node interface.
type base struct {
	ranges RangeSet
}

func (b *base) Ranges() *RangeSet { return &b.ranges }

// Block is an ordered list of statements. EntryGoto, when non-nil, is a Goto
// expression consulted before the body itself -- a construction-time detail
// some collaborators use to splice a jump in front of a block without
// renumbering its Body.
type Block struct {
	base
	Body      []Node
	EntryGoto *Expression
}

// NewBlock returns a block whose Body is the given statements (empty if none
// are given).
func NewBlock(body ...Node) *Block {
	return &Block{Body: body}
}

// Label is an identity-only marker. Its position inside a Block's Body is
// what makes it a branch destination; the Label value itself carries no
// data.
type Label struct {
	base
	// Name is a debugging aid only; it plays no role in control-flow
	// reasoning, which is keyed on the Label's identity.
	Name string
}

func NewLabel(name string) *Label {
	return &Label{Name: name}
}

// Condition is an if/else: Cond selects between Then and Else, both of which
// converge on the statement following the Condition.
type Condition struct {
	base
	Cond       *Expression
	Then, Else *Block
}

func NewCondition(cond *Expression, then, els *Block) *Condition {
	return &Condition{Cond: cond, Then: then, Else: els}
}

// Loop is a single construct covering both counted and unconditional loops.
// Cond is nil for an unconditional loop (for (;;) / while (true)); otherwise
// the loop re-evaluates Cond on every iteration before running Body.
type Loop struct {
	base
	Cond *Expression
	Body *Block
}

func NewLoop(cond *Expression, body *Block) *Loop {
	return &Loop{Cond: cond, Body: body}
}

// Switch dispatches on Cond to one of Cases. A CaseBlock with no Values is
// the default case.
type Switch struct {
	base
	Cond  *Expression
	Cases []*CaseBlock
}

func NewSwitch(cond *Expression, cases ...*CaseBlock) *Switch {
	return &Switch{Cond: cond, Cases: cases}
}

// CaseBlock is one arm of a Switch. An empty Values slice denotes the
// default case.
type CaseBlock struct {
	base
	Values []int64
	Body   []Node
}

func NewCaseBlock(body []Node, values ...int64) *CaseBlock {
	return &CaseBlock{Values: values, Body: body}
}

// IsDefault reports whether this is the switch's default arm.
func (c *CaseBlock) IsDefault() bool { return len(c.Values) == 0 }

// TryCatchBlock groups a guarded Try region with its CatchBlocks and an
// optional Finally region. Finally is nil when the construct has none.
type TryCatchBlock struct {
	base
	Try     *Block
	Catches []*CatchBlock
	Finally *Block
}

func NewTryCatchBlock(try *Block, finally *Block, catches ...*CatchBlock) *TryCatchBlock {
	return &TryCatchBlock{Try: try, Finally: finally, Catches: catches}
}

// CatchBlock is a single catch handler. ExceptionType is opaque to this
// core -- it is carried only so collaborators downstream can render it.
type CatchBlock struct {
	base
	ExceptionType string
	Body          *Block
}

func NewCatchBlock(exceptionType string, body *Block) *CatchBlock {
	return &CatchBlock{ExceptionType: exceptionType, Body: body}
}
