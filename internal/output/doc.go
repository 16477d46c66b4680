// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders load progress and diff results as text, json, yaml,
// a lipgloss table, or per-row JSON deltas.
package output
