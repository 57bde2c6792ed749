// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch runs the control-flow reconstruction core concurrently over
// many independent method bodies. spec.md §5 permits "multiple concurrent
// invocations... if each operates on a disjoint AST, no synchronization is
// provided" -- this package is the caller-facing helper that exploits that:
// a decompiler processing a whole class file has one disjoint root Block per
// method, and those methods share no state the core touches.
package batch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/godoctor/flowrec/ast"
	"github.com/godoctor/flowrec/cfr"
	"github.com/godoctor/flowrec/diag"
)

// Result is one root's outcome: its own Stats, or the error recovered from
// a StructuralError/UnsupportedNodeError panic raised while processing it.
type Result struct {
	Root  *ast.Block
	Stats cfr.Stats
	Err   error
}

// Run calls cfr.RemoveGotos on every root concurrently, up to the errgroup's
// default unbounded concurrency, and returns one Result per root in the same
// order as roots. log, if non-nil, receives every root's progress entries:
// each root logs into its own Log, whose entries are appended to log under a
// mutex once that root finishes. The caller's own reads of log are not
// synchronized by this package, so a caller should not read it until Run has
// returned.
//
// A panic from within one root's core invocation (a StructuralError or
// UnsupportedNodeError, per spec.md §7) is recovered and reported as that
// root's Result.Err; it does not abort the other roots in the batch.
func Run(ctx context.Context, roots []*ast.Block, log *diag.Log) ([]Result, error) {
	results := make([]Result, len(roots))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			var local *diag.Log
			if log != nil {
				local = diag.New()
			}
			results[i] = runOne(ctx, root, local)
			if log != nil {
				mu.Lock()
				log.Entries = append(log.Entries, local.Entries...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// runOne processes a single root, recovering any panic the core raises so
// that one malformed method body cannot take down the rest of the batch.
func runOne(ctx context.Context, root *ast.Block, log *diag.Log) (result Result) {
	result.Root = root
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("cfr/batch: %v", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}
	result.Stats = cfr.RemoveGotos(root, log)
	return result
}
