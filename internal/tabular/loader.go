// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tfctl/csvcompare/internal/log"
)

// Table maps primary-key values to rows. It is not modified after Load
// returns.
type Table struct {
	Source string
	Key    string
	// Headers are the trimmed column names; RawHeaders are as read.
	Headers    []string
	RawHeaders []string
	Warnings   []DuplicateKeyWarning

	rows map[string]*Row
}

// FromRows builds a Table directly from a key/row map.
func FromRows(source, key string, rows map[string]*Row) *Table {
	if rows == nil {
		rows = map[string]*Row{}
	}
	return &Table{Source: source, Key: key, rows: rows}
}

// Get returns the row stored under key.
func (t *Table) Get(key string) (*Row, bool) {
	if t == nil {
		return nil, false
	}
	r, ok := t.rows[key]
	return r, ok
}

// Keys returns the table's keys in no particular order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	return lo.Keys(t.rows)
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// RecordReader yields one record per call and io.EOF after the last.
// *csv.Reader satisfies it.
type RecordReader interface {
	Read() ([]string, error)
}

// rowNumberer is implemented by RecordReaders whose records do not sit on
// consecutive lines. RowNumber is the 1-based position of the last record read.
type rowNumberer interface {
	RowNumber() int
}

// Load opens path on fsys and decodes it as a Table keyed by key. Open
// failures are reported as *LoadError.
func Load(fsys afero.Fs, path string, key string, opts ...Option) (*Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	return Decode(f, path, key, opts...)
}

// Read parses r as comma-delimited text with a header row. source names the
// input in errors and warnings. On any error no Table is returned.
func Read(r io.Reader, source string, key string) (*Table, error) {
	// A UTF-8 or UTF-16 BOM selects the decoder and is dropped; anything else
	// must be valid UTF-8.
	decoded := transform.NewReader(r, unicode.BOMOverride(encoding.UTF8Validator))

	// Stray quotes are kept as text, and a quoted field left open at EOF
	// runs to the end of input.
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return FromRecords(cr, source, key)
}

// FromRecords builds a Table from a header record followed by data records.
// Read errors other than io.EOF are reported as *LoadError. Duplicate-key
// warnings count the header as line 1, unless rr reports its own row numbers.
func FromRecords(rr RecordReader, source string, key string) (*Table, error) {
	raw, err := rr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &EmptyInputError{Source: source}
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	headers := make([]string, len(raw))
	for i, h := range raw {
		headers[i] = strings.TrimSpace(h)
	}
	log.Debugf("headers read: source=%s headers=%q", source, headers)

	if !slices.Contains(headers, key) {
		return nil, &MissingKeyColumnError{
			Key:        key,
			Source:     source,
			Headers:    headers,
			RawHeaders: raw,
		}
	}

	t := &Table{
		Source:     source,
		Key:        key,
		Headers:    headers,
		RawHeaders: raw,
		rows:       make(map[string]*Row),
	}

	// The header is line 1, so the first data record is line 2.
	for line := 2; ; line++ {
		record, err := rr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: source, Err: err}
		}

		if rn, ok := rr.(rowNumberer); ok {
			line = rn.RowNumber()
		}

		row := buildRow(headers, record)

		k, ok := row.Get(key)
		if !ok {
			log.Tracef("row without key skipped: source=%s line=%d", source, line)
			continue
		}

		if _, dup := t.rows[k]; dup {
			w := DuplicateKeyWarning{Key: k, Source: source, Line: line}
			t.Warnings = append(t.Warnings, w)
			log.Debugf("duplicate key: key=%s source=%s line=%d", k, source, line)
		}
		t.rows[k] = row
	}

	log.Debugf("table loaded: source=%s rows=%s duplicates=%d",
		source, humanize.Comma(int64(len(t.rows))), len(t.Warnings))

	return t, nil
}

// buildRow pairs record fields with headers. Fields past the header go to
// Overflow; headers past the last field stay absent.
func buildRow(headers []string, record []string) *Row {
	row := &Row{Values: make(map[string]string, len(headers))}
	for i, v := range record {
		if i >= len(headers) {
			row.Overflow = append(row.Overflow, record[i:]...)
			break
		}
		row.set(headers[i], v)
	}
	return row
}
