// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the csv-compare CLI. It wires flags, validators and
// the compare action that loads both inputs, diffs them and prints the report.
package command
