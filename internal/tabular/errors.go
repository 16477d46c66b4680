// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// EmptyInputError reports a file with no rows at all, not even a header.
type EmptyInputError struct {
	Source string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("file '%s' appears to be empty", e.Source)
}

// MissingKeyColumnError reports a primary key that is not among the trimmed
// headers. Headers and RawHeaders are carried for diagnosis.
type MissingKeyColumnError struct {
	Key        string
	Source     string
	Headers    []string
	RawHeaders []string
}

func (e *MissingKeyColumnError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "primary key '%s' not found in %s\n", e.Key, e.Source)
	sb.WriteString("\n--- Diagnostics ---\n")
	fmt.Fprintf(&sb, "Expected Key: '%s'\n", e.Key)
	fmt.Fprintf(&sb, "Found Headers: %s\n", quoteList(e.Headers))
	fmt.Fprintf(&sb, "Raw Headers:   %s\n", quoteList(e.RawHeaders))
	sb.WriteString("-------------------")
	return sb.String()
}

// LoadError wraps any I/O, decode or parse failure hit while loading Source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("file '%s' not found", e.Source)
	}
	return fmt.Sprintf("error reading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DuplicateKeyWarning records a key seen more than once in Source. Line is the
// 1-indexed logical line of the later occurrence, which replaced the earlier.
type DuplicateKeyWarning struct {
	Key    string
	Source string
	Line   int
}

func (w DuplicateKeyWarning) String() string {
	return fmt.Sprintf("Warning: Duplicate key '%s' found in %s on line %d. Overwriting.", w.Key, w.Source, w.Line)
}

// quoteList renders ["a", " b"] with Go quoting so whitespace and BOMs show.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
