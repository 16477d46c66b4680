// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"image/color"
	"os"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/tfctl/csvcompare/internal/config"
)

type styles struct {
	colored bool
	title   lipgloss.Style
	left    lipgloss.Style
	right   lipgloss.Style
	warn    lipgloss.Style
}

// paint renders text with st when coloring, and returns it untouched
// otherwise so values keep their exact bytes.
func (s styles) paint(st lipgloss.Style, text string) string {
	if !s.colored {
		return text
	}
	return st.Render(text)
}

// newStyles returns plain styles, or colored ones when colored is true.
func newStyles(colored bool) styles {
	s := styles{
		colored: colored,
		title:   lipgloss.NewStyle(),
		left:    lipgloss.NewStyle(),
		right:   lipgloss.NewStyle(),
		warn:    lipgloss.NewStyle(),
	}
	if !colored {
		return s
	}

	title, left, right := getColors("colors")
	s.title = s.title.Foreground(title).Bold(true)
	s.left = s.left.Foreground(left)
	s.right = s.right.Foreground(right)
	s.warn = s.warn.Foreground(title)
	return s
}

// getColors picks the title, left and right colors. Explicit config values
// win; otherwise a default suited to the terminal background is used.
func getColors(key string) (title, left, right color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	title = resolveColor(key+".title", "#b08800", "#f6be00")
	left = resolveColor(key+".left", "#b31d28", "#f97583")
	right = resolveColor(key+".right", "#22863a", "#85e89d")
	return title, left, right
}
