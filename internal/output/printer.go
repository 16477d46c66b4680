// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/csvcompare/internal/differ"
	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/tabular"
)

// Formats lists the accepted --output values. The first is the default.
var Formats = []string{"text", "json", "yaml", "table", "delta"}

const separator = "----------------------------------------"

// Printer writes the report to Out. Progress and warnings go to Out as well,
// except for json and yaml where they go to Err so Out stays parseable.
type Printer struct {
	Out    io.Writer
	Err    io.Writer
	Format string
	Color  bool

	styles styles
}

// NewPrinter returns a Printer for format, resolving colors once.
func NewPrinter(out, errOut io.Writer, format string, color bool) *Printer {
	if format == "" {
		format = Formats[0]
	}
	p := &Printer{Out: out, Err: errOut, Format: format, Color: color}
	p.styles = newStyles(color)
	return p
}

// ColorEnabled reports whether color was requested and w is a terminal.
func ColorEnabled(requested bool, w io.Writer) bool {
	f, ok := w.(*os.File)
	return requested && ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) structured() bool {
	return p.Format == "json" || p.Format == "yaml"
}

func (p *Printer) progress() io.Writer {
	if p.structured() && p.Err != nil {
		return p.Err
	}
	return p.Out
}

// Loading announces that name is being read.
func (p *Printer) Loading(name string) {
	fmt.Fprintf(p.progress(), "Loading %s...\n", name)
}

// Warnings prints each duplicate-key warning of a loaded table.
func (p *Printer) Warnings(t *tabular.Table) {
	for _, w := range t.Warnings {
		fmt.Fprintln(p.progress(), p.styles.paint(p.styles.warn, w.String()))
	}
}

// Report renders result, naming the two inputs left and right.
func (p *Printer) Report(left, right string, result differ.Result) error {
	log.Debugf("rendering report: format=%s count=%d", p.Format, result.Count)

	switch p.Format {
	case "json":
		out, err := json.MarshalIndent(newDocument(left, right, result), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json report: %w", err)
		}
		_, err = fmt.Fprintln(p.Out, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(newDocument(left, right, result))
		if err != nil {
			return fmt.Errorf("failed to marshal yaml report: %w", err)
		}
		_, err = p.Out.Write(out)
		return err
	case "table":
		p.table(left, right, result)
	case "delta":
		if err := p.deltas(result); err != nil {
			return err
		}
	case "text":
		p.text(left, right, result)
	default:
		return fmt.Errorf("unknown output format %q", p.Format)
	}

	p.summary(result)
	return nil
}

func (p *Printer) text(left, right string, result differ.Result) {
	fmt.Fprintf(p.Out, "\n%s\n\n", p.styles.paint(p.styles.title, "--- Differences Found ---"))

	for _, d := range result.Differences {
		fmt.Fprintf(p.Out, "Key: %s\n", d.Key)
		if len(d.Mismatched) > 0 {
			fmt.Fprintf(p.Out, "  Mismatch in columns: %s\n", strings.Join(d.Mismatched, ", "))
		}
		fmt.Fprintln(p.Out, p.styles.paint(p.styles.left, fmt.Sprintf("< %s: %s", left, d.Left)))
		fmt.Fprintln(p.Out, p.styles.paint(p.styles.right, fmt.Sprintf("> %s: %s", right, d.Right)))
		fmt.Fprintln(p.Out, separator)
	}
}

func (p *Printer) deltas(result differ.Result) error {
	for _, d := range result.Differences {
		delta, err := differ.Delta(d, p.Color)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.Out, "Key: %s (%s)\n", d.Key, status(d))
		fmt.Fprint(p.Out, delta)
		if !strings.HasSuffix(delta, "\n") {
			fmt.Fprintln(p.Out)
		}
		fmt.Fprintln(p.Out, separator)
	}
	return nil
}

// summary prints the limit notice, then either the no-differences line or the
// total. A zero limit still reports no differences in text; structured
// output carries the distinction in identical and limitReached.
func (p *Printer) summary(result differ.Result) {
	if result.LimitReached {
		fmt.Fprintf(p.Out, "\nLimit of %d differences reached. Stopping.\n", result.Limit)
	}

	if result.Count == 0 {
		fmt.Fprintln(p.Out, "No differences found.")
		return
	}
	fmt.Fprintf(p.Out, "\nTotal differences found: %s\n", humanize.Comma(int64(result.Count)))
}

// Difference states used in structured output.
const (
	StatusChanged      = "changed"
	StatusMissingLeft  = "missing_left"
	StatusMissingRight = "missing_right"
)

func status(d differ.Difference) string {
	switch {
	case d.Left == nil:
		return StatusMissingLeft
	case d.Right == nil:
		return StatusMissingRight
	default:
		return StatusChanged
	}
}

type document struct {
	Left         string       `json:"left" yaml:"left"`
	Right        string       `json:"right" yaml:"right"`
	Identical    bool         `json:"identical" yaml:"identical"`
	Count        int          `json:"count" yaml:"count"`
	Limit        int          `json:"limit" yaml:"limit"`
	LimitReached bool         `json:"limitReached" yaml:"limitReached"`
	Differences  []difference `json:"differences" yaml:"differences"`
}

type difference struct {
	Key        string            `json:"key" yaml:"key"`
	Status     string            `json:"status" yaml:"status"`
	Mismatched []string          `json:"mismatched,omitempty" yaml:"mismatched,omitempty"`
	Left       map[string]string `json:"left" yaml:"left"`
	Right      map[string]string `json:"right" yaml:"right"`
}

func newDocument(left, right string, result differ.Result) document {
	doc := document{
		Left:         left,
		Right:        right,
		Identical:    result.Identical(),
		Count:        result.Count,
		Limit:        result.Limit,
		LimitReached: result.LimitReached,
		Differences:  make([]difference, 0, len(result.Differences)),
	}
	for _, d := range result.Differences {
		doc.Differences = append(doc.Differences, difference{
			Key:        d.Key,
			Status:     status(d),
			Mismatched: d.Mismatched,
			Left:       values(d.Left),
			Right:      values(d.Right),
		})
	}
	return doc
}

func values(r *tabular.Row) map[string]string {
	if r == nil {
		return nil
	}
	return r.Values
}
