// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package astutil

import "iter"

// FirstOrDefault returns the first element of s and true, or the zero value
// and false if s is empty.
func FirstOrDefault[T any](s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[0], true
}

// LastOrDefault returns the last element of s and true, or the zero value
// and false if s is empty.
func LastOrDefault[T any](s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[len(s)-1], true
}

// ToList materializes a lazy, non-restartable sequence into a slice. Used by
// the core's try-chain comparison, the one place a parent-ancestry walk must
// be consumed more than once.
func ToList[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
