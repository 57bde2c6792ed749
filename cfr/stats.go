// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfr

import "fmt"

// Stats accumulates counts of what one RemoveGotos/RemoveRedundantCode run
// actually did. It is not part of the core's decision-making -- every field
// is write-only from the core's perspective -- but gives a caller something
// machine-readable to inspect or aggregate across many method bodies (see
// cfr/batch), the same courtesy doctor.Log entries give refactoring.Run's
// caller.
type Stats struct {
	GotosFoldedToNop      int
	GotosFoldedToBreak    int
	GotosFoldedToContinue int

	LabelsPurged int
	NopsPurged   int
	LeavesPurged int

	TrailingContinuesRemoved  int
	SwitchBreaksRemoved       int
	SwitchCasesRemoved        int
	TrailingReturnsRemoved    int
	UnreachableReturnsRemoved int

	Reruns int
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"gotos folded: %d nop, %d break, %d continue; purged: %d labels, %d nops, %d leaves; "+
			"trailing continues: %d; switch breaks: %d; switch cases: %d; trailing returns: %d; "+
			"unreachable returns: %d; reruns: %d",
		s.GotosFoldedToNop, s.GotosFoldedToBreak, s.GotosFoldedToContinue,
		s.LabelsPurged, s.NopsPurged, s.LeavesPurged,
		s.TrailingContinuesRemoved, s.SwitchBreaksRemoved, s.SwitchCasesRemoved,
		s.TrailingReturnsRemoved, s.UnreachableReturnsRemoved, s.Reruns)
}
