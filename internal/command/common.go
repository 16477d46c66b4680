// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvcompare/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata with unset
// fields defaulted. If missing or of an unexpected type, the defaults alone
// are returned.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}.WithDefaults()
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m.WithDefaults()
	}
	return meta.Meta{}.WithDefaults()
}

// splitList splits a comma-separated flag value, trimming blanks and empties.
func splitList(value string) []string {
	return lo.Compact(lo.Map(strings.Split(value, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
