// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package astutil supplies the small pattern-matching and collection
// helpers the control-flow reconstruction core (package cfr) is built on
// top of, and that a real decompiler's other passes share with it.
package astutil

import "github.com/godoctor/flowrec/ast"

// Match reports whether n is an *ast.Expression with the given opcode.
func Match(n ast.Node, op ast.Opcode) bool {
	e, ok := n.(*ast.Expression)
	return ok && e.Op == op
}

// MatchGetOperand reports whether n is an *ast.Expression with the given
// opcode and, if so, returns its operand.
func MatchGetOperand(n ast.Node, op ast.Opcode) (ast.Node, bool) {
	e, ok := n.(*ast.Expression)
	if !ok || e.Op != op {
		return nil, false
	}
	return e.Operand, true
}

// MatchLast reports whether body's last element is an *ast.Expression with
// the given opcode.
func MatchLast(body []ast.Node, op ast.Opcode) bool {
	last, ok := LastOrDefault(body)
	if !ok {
		return false
	}
	return Match(last, op)
}
