// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/tfctl/csvcompare/internal/cacheutil"
	"github.com/tfctl/csvcompare/internal/config"
	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/tabular"
)

// Source is one input to compare.
type Source interface {
	// Load reads the input into a Table keyed by key.
	Load(ctx context.Context, key string) (*tabular.Table, error)
	// String names the input in progress lines and errors.
	String() string
}

// Local is a file on Fs.
type Local struct {
	Fs      afero.Fs
	Path    string
	Options []tabular.Option
}

func (l *Local) Load(_ context.Context, key string) (*tabular.Table, error) {
	return tabular.Load(l.Fs, l.Path, key, l.Options...)
}

func (l *Local) String() string {
	return l.Path
}

// Resolver turns input arguments into Sources. NewClient is only called for
// the first s3:// input. Options are handed to every Source it returns.
type Resolver struct {
	Fs        afero.Fs
	Cache     *cacheutil.Cache
	NewClient func(context.Context) (ObjectAPI, error)
	Options   []tabular.Option

	client ObjectAPI
}

// Resolve returns the Source for input.
func (r *Resolver) Resolve(ctx context.Context, input string) (Source, error) {
	if !strings.HasPrefix(input, "s3://") {
		return &Local{Fs: r.Fs, Path: input, Options: r.Options}, nil
	}

	bucket, key, version, err := ParseS3URI(input)
	if err != nil {
		return nil, err
	}

	if r.client == nil {
		if r.NewClient == nil {
			return nil, fmt.Errorf("no S3 client available for %s", input)
		}
		if r.client, err = r.NewClient(ctx); err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}

		cleanHours, _ := config.GetInt("cache.clean", 0)
		if err := r.Cache.Purge(cleanHours); err != nil {
			log.WithError(err).Warn("failed to purge cache")
		}
	}

	log.Debugf("resolved s3 source: bucket=%s key=%s version=%s", bucket, key, version)
	return &S3{
		URI:       input,
		Bucket:    bucket,
		Key:       key,
		VersionID: version,
		Client:    r.client,
		Cache:     r.Cache,
		Options:   r.Options,
	}, nil
}
