// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tfctl/csvcompare/internal/log"
)

// ReadWorkbook reads one worksheet of an Excel workbook as a Table. The first
// row is the header. sheet defaults to the first sheet in the workbook.
//
// Worksheets drop trailing empty cells, so data rows are padded to the header
// width: an empty cell is an empty value, never an absent column. Wholly
// empty rows are skipped, as blank lines are in delimited text.
func ReadWorkbook(r io.Reader, source string, key string, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("failed to open workbook: %w", err)}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &EmptyInputError{Source: source}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("failed to read sheet %s: %w", sheet, err)}
	}
	log.Debugf("worksheet read: source=%s sheet=%s rows=%d", source, sheet, len(rows))

	return FromRecords(&sheetRecords{rows: rows}, source, key)
}

// sheetRecords replays worksheet rows as records.
type sheetRecords struct {
	rows  [][]string
	next  int
	width int
}

// RowNumber is the worksheet row of the last record returned.
func (s *sheetRecords) RowNumber() int {
	return s.next
}

func (s *sheetRecords) Read() ([]string, error) {
	for s.next < len(s.rows) {
		record := s.rows[s.next]
		s.next++
		if len(record) == 0 {
			continue
		}

		if s.width == 0 {
			s.width = len(record)
			return record, nil
		}
		for len(record) < s.width {
			record = append(record, "")
		}
		return record, nil
	}
	return nil, io.EOF
}
