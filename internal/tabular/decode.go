// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tabular

import (
	"io"
	"path"
	"strings"
)

type options struct {
	sheet string
}

// Option customizes Decode.
type Option func(*options)

// WithSheet selects the worksheet read from workbook inputs. Empty means the
// first sheet. It has no effect on delimited text.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// IsWorkbook reports whether name looks like an Excel workbook. A query
// string, as on s3:// URIs, is ignored.
func IsWorkbook(name string) bool {
	name, _, _ = strings.Cut(name, "?")
	ext := strings.ToLower(path.Ext(name))
	return ext == ".xlsx" || ext == ".xlsm"
}

// Decode reads r as a workbook when source names one and as delimited text
// otherwise.
func Decode(r io.Reader, source string, key string, opts ...Option) (*Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if IsWorkbook(source) {
		return ReadWorkbook(r, source, key, o.sheet)
	}
	return Read(r, source, key)
}
