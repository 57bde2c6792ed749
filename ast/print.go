// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"strings"
)

var opcodeNames = map[Opcode]string{
	OpGoto:              "goto",
	OpNop:               "nop",
	OpLeave:             "leave",
	OpReturn:            "return",
	OpLoopOrSwitchBreak: "break",
	OpLoopContinue:      "continue",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("op%d", int(op))
}

func (e *Expression) String() string {
	if e.Op == OpGoto {
		return fmt.Sprintf("(goto %s)", e.Operand)
	}
	if len(e.Args) == 0 {
		return fmt.Sprintf("(%s)", e.Op)
	}
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("(%s %s)", e.Op, strings.Join(args, " "))
}

func (l *Label) String() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("L%p", l)
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, n := range b.Body {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", n)
	}
	sb.WriteString("}")
	return sb.String()
}
