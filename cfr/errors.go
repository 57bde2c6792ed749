// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfr

import (
	"fmt"

	"github.com/godoctor/flowrec/ast"
)

// StructuralError is raised while building the index (see index.go) when a
// Node is reached through two distinct parents. The parent map is then
// ill-defined and the core cannot proceed; this is a programmer/data
// error, never a condition this core recovers from.
type StructuralError struct {
	Node   ast.Node
	Parent ast.Node
	Other  ast.Node
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("cfr: node %p reachable via two distinct parents (%p and %p)",
		e.Node, e.Parent, e.Other)
}

// UnsupportedNodeError re-exports ast.UnsupportedNodeError under the name
// this core's own documentation (and spec) uses. It is raised when the
// walker reaches a Node variant neither Children nor Enter/Exit know how to
// handle -- see ast.Children.
type UnsupportedNodeError = ast.UnsupportedNodeError
