// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes per-key differences between two tabular.Tables.
// Keys are visited in byte order so results do not depend on map iteration,
// and output is bounded by a difference limit.
package differ
