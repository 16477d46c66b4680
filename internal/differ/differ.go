// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"slices"

	"github.com/samber/lo"

	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/tabular"
)

// Difference is one key whose rows are not equal. A nil Left or Right means
// the key is missing from that table. Mismatched is set only when both rows
// are present.
type Difference struct {
	Key        string
	Left       *tabular.Row
	Right      *tabular.Row
	Mismatched []string
}

// Result is the outcome of Diff. Count is the number of differences found
// before stopping, which always equals len(Differences). LimitReached is set
// when keys remained unexamined because Count hit Limit.
type Result struct {
	Differences  []Difference
	Count        int
	Limit        int
	LimitReached bool
}

// Identical reports that every key was examined and none differed.
func (r Result) Identical() bool {
	return r.Count == 0 && !r.LimitReached
}

type options struct {
	ignore []string
	scope  func(*tabular.Row) bool
}

// Option customizes Diff.
type Option func(*options)

// WithIgnoredColumns excludes columns from row equality and mismatch lists.
func WithIgnoredColumns(columns ...string) Option {
	return func(o *options) {
		o.ignore = lo.Uniq(append(o.ignore, lo.Compact(columns)...))
	}
}

// WithScope restricts Diff to keys where at least one side's row satisfies
// match. match must accept a nil row.
func WithScope(match func(*tabular.Row) bool) Option {
	return func(o *options) {
		o.scope = match
	}
}

// Diff walks the union of both tables' keys in sorted order and collects a
// Difference for each key whose rows are not equal, stopping once limit
// differences have been collected. A limit <= 0 examines nothing.
func Diff(left, right *tabular.Table, limit int, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	keys := lo.Union(left.Keys(), right.Keys())
	slices.Sort(keys)
	if o.scope != nil {
		keys = lo.Filter(keys, func(key string, _ int) bool {
			row1, _ := left.Get(key)
			row2, _ := right.Get(key)
			return o.scope(row1) || o.scope(row2)
		})
	}
	log.Debugf("diff: keys=%d limit=%d ignore=%v", len(keys), limit, o.ignore)

	result := Result{Limit: limit}
	for _, key := range keys {
		if result.Count >= limit {
			result.LimitReached = true
			break
		}

		row1, _ := left.Get(key)
		row2, _ := right.Get(key)
		if row1.Equal(row2, o.ignore...) {
			continue
		}

		d := Difference{Key: key, Left: row1, Right: row2}
		if row1 != nil && row2 != nil {
			d.Mismatched = MismatchedColumns(row1, row2, o.ignore...)
		}
		log.Tracef("difference: key=%s mismatched=%v", key, d.Mismatched)

		result.Differences = append(result.Differences, d)
		result.Count++
	}

	return result
}

// MismatchedColumns lists the columns whose values differ between two rows,
// counting a column present on only one side as a mismatch. Order follows
// left's columns, then right-only columns in right's order.
func MismatchedColumns(left, right *tabular.Row, ignore ...string) []string {
	var columns []string
	if left != nil {
		columns = append(columns, left.Columns...)
	}
	if right != nil {
		columns = append(columns, right.Columns...)
	}

	var mismatched []string
	for _, c := range lo.Uniq(columns) {
		if slices.Contains(ignore, c) {
			continue
		}
		v1, ok1 := left.Get(c)
		v2, ok2 := right.Get(c)
		if ok1 != ok2 || v1 != v2 {
			mismatched = append(mismatched, c)
		}
	}
	return mismatched
}
