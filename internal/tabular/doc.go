// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tabular loads comma-delimited files with a header row into a Table
// addressable by a primary-key column. Header names are whitespace-trimmed, a
// leading byte-order mark is ignored, duplicate keys resolve last-write-wins
// with a recorded warning, and ragged rows are tolerated.
package tabular
