// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

// Opcode identifies what an Expression does. The six opcodes below are the
// ones this core rewrites or recognizes explicitly; every other opcode value
// is opaque -- this core only ever asks an opaque Expression whether it
// IsBranch or IsUnconditionalControlFlow, never what it actually computes.
type Opcode int

const (
	// OpGoto is a synthetic unconditional jump; its Operand is always the
	// target *Label.
	OpGoto Opcode = iota
	// OpNop is a fall-through no-op, the thing a Goto degrades into once
	// it is proven redundant.
	OpNop
	// OpLeave marks the end of a guarded region reached by falling off
	// the end of a try/catch, pending removal by the dead-code sweeper.
	OpLeave
	// OpReturn exits the method, optionally carrying a value in Args.
	OpReturn
	// OpLoopOrSwitchBreak exits the nearest enclosing Loop or Switch.
	OpLoopOrSwitchBreak
	// OpLoopContinue re-enters the nearest enclosing Loop.
	OpLoopContinue
	// OpOpaque is the first value free for a caller's own opcodes (method
	// calls, arithmetic, raw conditional branches not yet structured into
	// a Condition, and so on). This core never switches on values >=
	// OpOpaque; it asks IsBranch/IsUnconditionalControlFlow instead.
	OpOpaque
)

// Expression is a single operation: an opcode, an optional operand, and an
// ordered list of argument sub-expressions. Goto's Operand is always a
// *Label; other opcodes may leave Operand nil or use it for their own
// purposes -- this core never interprets it except for OpGoto.
type Expression struct {
	base
	Op      Opcode
	Operand Node
	Args    []*Expression

	targets       []*Label
	unconditional bool
}

// NewGoto returns a Goto expression targeting label.
func NewGoto(label *Label) *Expression {
	return &Expression{
		Op:            OpGoto,
		Operand:       label,
		targets:       []*Label{label},
		unconditional: true,
	}
}

// NewNop returns a no-op expression.
func NewNop() *Expression {
	return &Expression{Op: OpNop}
}

// NewLeave returns a Leave expression.
func NewLeave() *Expression {
	return &Expression{Op: OpLeave, unconditional: true}
}

// NewReturn returns a Return expression, optionally carrying a value.
func NewReturn(value *Expression) *Expression {
	e := &Expression{Op: OpReturn, unconditional: true}
	if value != nil {
		e.Args = []*Expression{value}
	}
	return e
}

// HasValue reports whether a Return expression carries a value.
func (e *Expression) HasValue() bool {
	return e.Op == OpReturn && len(e.Args) > 0
}

// NewLoopOrSwitchBreak returns a break expression with no operand.
func NewLoopOrSwitchBreak() *Expression {
	return &Expression{Op: OpLoopOrSwitchBreak, unconditional: true}
}

// NewLoopContinue returns a continue expression with no operand.
func NewLoopContinue() *Expression {
	return &Expression{Op: OpLoopContinue, unconditional: true}
}

// NewOpaque returns a generic, non-branching expression of the given opcode.
// It is used for ordinary computation (arithmetic, calls, field access) that
// this core treats as a single fall-through statement.
func NewOpaque(op Opcode, args ...*Expression) *Expression {
	if op < OpOpaque {
		panic("ast: NewOpaque used with a reserved opcode")
	}
	return &Expression{Op: op, Args: args}
}

// NewBranch returns a generic conditional branch expression: one that
// IsBranch reports true for, without being unconditional control flow. This
// models a low-level jump a bytecode frontend has not yet structured into a
// Condition -- this core does not rewrite it, but the dead-code sweeper's
// live-label computation must still see its targets.
func NewBranch(op Opcode, targets ...*Label) *Expression {
	if op < OpOpaque {
		panic("ast: NewBranch used with a reserved opcode")
	}
	return &Expression{Op: op, targets: targets}
}

// NewUnconditional returns a generic expression that never falls through
// (e.g. a raw throw) without being one of the six well-known opcodes.
func NewUnconditional(op Opcode, args ...*Expression) *Expression {
	if op < OpOpaque {
		panic("ast: NewUnconditional used with a reserved opcode")
	}
	return &Expression{Op: op, Args: args, unconditional: true}
}

// IsBranch reports whether this expression carries branch targets.
func (e *Expression) IsBranch() bool { return len(e.targets) > 0 }

// Targets returns this expression's branch targets, empty if IsBranch is
// false.
func (e *Expression) Targets() []*Label { return e.targets }

// IsUnconditionalControlFlow reports whether this expression transfers
// control and never falls through to its textual successor.
func (e *Expression) IsUnconditionalControlFlow() bool { return e.unconditional }

// BecomeNop rewrites e in place into a Nop, clearing its operand and branch
// metadata. Used by the jump simplifier when a Goto is proven to be a plain
// fall-through.
func (e *Expression) BecomeNop() {
	e.Op = OpNop
	e.Operand = nil
	e.targets = nil
	e.unconditional = false
}

// BecomeBreak rewrites e in place into a LoopOrSwitchBreak.
func (e *Expression) BecomeBreak() {
	e.Op = OpLoopOrSwitchBreak
	e.Operand = nil
	e.targets = nil
	e.unconditional = true
}

// BecomeContinue rewrites e in place into a LoopContinue.
func (e *Expression) BecomeContinue() {
	e.Op = OpLoopContinue
	e.Operand = nil
	e.targets = nil
	e.unconditional = true
}
