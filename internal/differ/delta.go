// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/csvcompare/internal/tabular"
)

// Delta renders a Difference as an ASCII JSON delta from the left row to the
// right row. A missing side is treated as an empty object, so a missing row
// shows every column as added or removed.
func Delta(d Difference, coloring bool) (string, error) {
	left := rowDocument(d.Left)
	right := rowDocument(d.Right)

	leftJSON, err := json.Marshal(left)
	if err != nil {
		return "", fmt.Errorf("failed to marshal row %s: %w", d.Key, err)
	}
	rightJSON, err := json.Marshal(right)
	if err != nil {
		return "", fmt.Errorf("failed to marshal row %s: %w", d.Key, err)
	}

	delta, err := gojsondiff.New().Compare(leftJSON, rightJSON)
	if err != nil {
		return "", fmt.Errorf("failed to compare rows %s: %w", d.Key, err)
	}
	if !delta.Modified() {
		return "", nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}
	return formatter.NewAsciiFormatter(left, config).Format(delta)
}

// rowDocument converts a row into the generic document shape gojsondiff
// walks. Overflow fields are left out as they are in equality.
func rowDocument(row *tabular.Row) map[string]interface{} {
	doc := map[string]interface{}{}
	if row == nil {
		return doc
	}
	for c, v := range row.Values {
		doc[c] = v
	}
	return doc
}
