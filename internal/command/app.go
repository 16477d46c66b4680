// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvcompare/internal/config"
	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/meta"
	"github.com/tfctl/csvcompare/internal/version"
)

// Namespace is the config namespace tried before bare keys.
const Namespace = "compare"

// InitApp builds the root command. m may carry a filesystem and streams to
// run against; unset fields fall back to the OS.
func InitApp(ctx context.Context, args []string, m ...meta.Meta) (*cli.Command, error) {
	// A missing config file is not an error; flags and defaults still apply.
	cfg, err := config.Load(Namespace)
	if err != nil {
		log.Debugf("config not loaded: %v", err)
		config.Config = config.Type{Namespace: Namespace}
	}

	var base meta.Meta
	if len(m) > 0 {
		base = m[0]
	}
	base.Args = args
	base.Config = cfg
	base.Context = ctx
	base = base.WithDefaults()

	app := &cli.Command{
		Name:      version.Name,
		Usage:     "compare two CSV files by a primary key column",
		UsageText: version.Name + " [options] file1 file2 primaryKey",
		Metadata: map[string]any{
			"meta": base,
		},
		Flags: append(NewCompareFlags(Namespace, cfg.Source),
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "csv-compare version info",
				HideDefault: true,
			},
		),
		Action:    compareCommandAction,
		Writer:    base.Stdout,
		ErrWriter: base.Stderr,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
