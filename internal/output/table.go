// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/tfctl/csvcompare/internal/differ"
)

// table renders one line per difference with the two row renderings side by
// side.
func (p *Printer) table(left, right string, result differ.Result) {
	if len(result.Differences) == 0 {
		return
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)
	if p.Color {
		headerStyle = p.styles.title.Align(lipgloss.Left)
	}

	rows := make([][]string, 0, len(result.Differences))
	for _, d := range result.Differences {
		rows = append(rows, []string{
			d.Key,
			status(d),
			dash(strings.Join(d.Mismatched, ", ")),
			d.Left.String(),
			d.Right.String(),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case col == 3 && p.Color:
				style = p.styles.left
			case col == 4 && p.Color:
				style = p.styles.right
			default:
				style = cellStyle
			}

			if col > 0 {
				style = style.PaddingLeft(2)
			}
			return style
		}).
		Headers("KEY", "STATUS", "COLUMNS", "< "+left, "> "+right).
		BorderHeader(false).
		Rows(rows...)

	fmt.Fprintln(p.Out, t)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
