// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/tfctl/csvcompare/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// loaded configuration, context, and the filesystem and streams the command
// works against.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context

	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// WithDefaults fills unset Fs and streams with the OS ones.
func (m Meta) WithDefaults() Meta {
	if m.Fs == nil {
		m.Fs = afero.NewOsFs()
	}
	if m.Stdout == nil {
		m.Stdout = os.Stdout
	}
	if m.Stderr == nil {
		m.Stderr = os.Stderr
	}
	return m
}
