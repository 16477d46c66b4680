// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"slices"
	"strconv"
	"strings"
)

// Row is one data record keyed by trimmed column name. Columns lists the
// present columns in header order; a column missing from Values was absent in
// the source (short row), which is distinct from an empty value.
type Row struct {
	Columns []string
	Values  map[string]string
	// Overflow holds fields beyond the header. It never takes part in
	// equality.
	Overflow []string
}

// NewRow builds a Row from column/value pairs given in order.
func NewRow(pairs ...string) *Row {
	r := &Row{Values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.set(pairs[i], pairs[i+1])
	}
	return r
}

func (r *Row) set(column, value string) {
	if _, seen := r.Values[column]; !seen {
		r.Columns = append(r.Columns, column)
	}
	r.Values[column] = value
}

// Get returns the value for column and whether the column was present.
func (r *Row) Get(column string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.Values[column]
	return v, ok
}

// Equal reports whether both rows hold the same column set with the same
// values, skipping any ignored columns. Two nil rows are equal.
func (r *Row) Equal(other *Row, ignore ...string) bool {
	if r == nil || other == nil {
		return r == other
	}

	size := func(row *Row) int {
		n := 0
		for c := range row.Values {
			if !slices.Contains(ignore, c) {
				n++
			}
		}
		return n
	}
	if size(r) != size(other) {
		return false
	}

	for c, v := range r.Values {
		if slices.Contains(ignore, c) {
			continue
		}
		if ov, ok := other.Values[c]; !ok || ov != v {
			return false
		}
	}
	return true
}

// String renders the row as {"col": "value", ...} in column order.
func (r *Row) String() string {
	if r == nil {
		return "MISSING"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range r.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(c))
		sb.WriteString(": ")
		sb.WriteString(strconv.Quote(r.Values[c]))
	}
	if len(r.Overflow) > 0 {
		if len(r.Columns) > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("...: [")
		for i, v := range r.Overflow {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Quote(v))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte('}')
	return sb.String()
}
