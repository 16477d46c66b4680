// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvcompare/internal/aws"
	"github.com/tfctl/csvcompare/internal/cacheutil"
	"github.com/tfctl/csvcompare/internal/differ"
	"github.com/tfctl/csvcompare/internal/filters"
	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/output"
	"github.com/tfctl/csvcompare/internal/source"
	"github.com/tfctl/csvcompare/internal/tabular"
)

// compareCommandAction loads both inputs, diffs them by the primary key and
// prints the report. Any load failure is returned untouched so main can
// report it and exit non-zero.
func compareCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if cmd.Args().Len() != 3 {
		return fmt.Errorf("expected file1 file2 primaryKey, got %d argument(s)\n\nUsage: %s", cmd.Args().Len(), cmd.UsageText)
	}
	file1, file2, key := cmd.Args().Get(0), cmd.Args().Get(1), cmd.Args().Get(2)

	scope, err := filters.Parse(cmd.String("filter"))
	if err != nil {
		return err
	}

	color := output.ColorEnabled(cmd.Bool("color"), m.Stdout)
	p := output.NewPrinter(m.Stdout, m.Stderr, cmd.String("output"), color)

	resolver := &source.Resolver{
		Fs:        m.Fs,
		Cache:     cacheutil.New(),
		NewClient: s3ClientFactory(cmd),
		Options:   []tabular.Option{tabular.WithSheet(cmd.String("sheet"))},
	}

	var sources [2]source.Source
	for i, spec := range []string{file1, file2} {
		src, err := resolver.Resolve(ctx, spec)
		if err != nil {
			return err
		}
		sources[i] = src
	}

	tables, err := loadTables(ctx, p, key, sources)
	if err != nil {
		return err
	}

	ignore := splitList(cmd.String("ignore"))
	log.Debugf("limit=%d ignore=%v filters=%d", cmd.Int("limit"), ignore, len(scope))

	opts := []differ.Option{differ.WithIgnoredColumns(ignore...)}
	if len(scope) > 0 {
		warnUnknownColumns(scope.Columns(), tables)
		opts = append(opts, differ.WithScope(scope.Match))
	}

	result := differ.Diff(tables[0], tables[1], cmd.Int("limit"), opts...)
	return p.Report(sources[0].String(), sources[1].String(), result)
}

// loadTables loads both sources concurrently, then reports progress in
// argument order so output does not depend on which load finishes first. The
// first failing source, in argument order, is the error returned.
func loadTables(ctx context.Context, p *output.Printer, key string, sources [2]source.Source) ([2]*tabular.Table, error) {
	var (
		tables [2]*tabular.Table
		errs   [2]error
		wg     conc.WaitGroup
	)

	for i, src := range sources {
		wg.Go(func() {
			tables[i], errs[i] = src.Load(ctx, key)
		})
	}
	wg.Wait()

	for i, src := range sources {
		p.Loading(src.String())
		if errs[i] != nil {
			return tables, errs[i]
		}
		p.Warnings(tables[i])
	}

	return tables, nil
}

// warnUnknownColumns logs filter columns found in neither header. Such a
// filter matches no row.
func warnUnknownColumns(columns []string, tables [2]*tabular.Table) {
	for _, c := range columns {
		if !slices.Contains(tables[0].Headers, c) && !slices.Contains(tables[1].Headers, c) {
			log.Warnf("filter column %q is not in either header", c)
		}
	}
}

// s3ClientFactory defers AWS config loading until an s3:// input is seen.
func s3ClientFactory(cmd *cli.Command) func(context.Context) (source.ObjectAPI, error) {
	return func(ctx context.Context) (source.ObjectAPI, error) {
		cfg, err := aws.LoadAWSConfig(ctx,
			aws.WithProfile(cmd.String("profile")),
			aws.WithRegion(cmd.String("region")),
		)
		if err != nil {
			return nil, err
		}
		return aws.NewS3(cfg, aws.WithS3Endpoint(cmd.String("endpoint"))), nil
	}
}
