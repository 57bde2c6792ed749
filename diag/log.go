// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file defines the Log type and associated methods. A run of the
// control-flow reconstruction core optionally records its progress into a
// Log: how many gotos it rewrote, how many dead nodes it purged, and
// whether it had to re-run itself. A nil Log is a complete no-op, so a
// caller that does not care about this can ignore the package entirely.

package diag

import (
	"bytes"
	"fmt"
)

// Severity classifies a LogEntry. This core only ever logs INFO entries
// about its own progress; WARNING and above are provided for other passes
// in the same codebase that share this Log type.
type Severity int

const (
	INFO Severity = iota
	WARNING
	ERROR
	FATAL_ERROR
)

func (s Severity) String() string {
	switch s {
	case INFO:
		return "INFO"
	case WARNING:
		return "WARNING"
	case ERROR:
		return "ERROR"
	case FATAL_ERROR:
		return "FATAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// A LogEntry is a single message in a Log.
type LogEntry struct {
	Severity Severity
	Message  string
}

func (entry LogEntry) String() string {
	var buf bytes.Buffer
	switch entry.Severity {
	case INFO:
		// No prefix.
	case WARNING:
		buf.WriteString("Warning: ")
	case ERROR:
		buf.WriteString("Error: ")
	case FATAL_ERROR:
		buf.WriteString("ERROR: ")
	}
	buf.WriteString(entry.Message)
	return buf.String()
}

// Log is an append-only sequence of LogEntry values.
type Log struct {
	Entries []LogEntry
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// Logf appends a formatted entry of the given severity to log. It is a no-op if log is nil,
// so call sites never need to guard it with a nil check.
func (log *Log) Logf(severity Severity, format string, args ...any) {
	if log == nil {
		return
	}
	log.Entries = append(log.Entries, LogEntry{Severity: severity, Message: fmt.Sprintf(format, args...)})
}

// ContainsErrors reports whether the log contains at least one ERROR or
// FATAL_ERROR entry.
func (log *Log) ContainsErrors() bool {
	if log == nil {
		return false
	}
	for _, entry := range log.Entries {
		if entry.Severity >= ERROR {
			return true
		}
	}
	return false
}

func (log *Log) String() string {
	if log == nil {
		return ""
	}
	var buf bytes.Buffer
	for _, entry := range log.Entries {
		buf.WriteString(entry.String())
		buf.WriteString("\n")
	}
	return buf.String()
}
