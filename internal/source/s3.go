// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	"github.com/tfctl/csvcompare/internal/cacheutil"
	"github.com/tfctl/csvcompare/internal/log"
	"github.com/tfctl/csvcompare/internal/tabular"
)

// ObjectAPI is the subset of the S3 client used to fetch inputs.
type ObjectAPI interface {
	HeadObject(ctx context.Context, in *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// S3 is an object in a bucket, optionally pinned to a version.
type S3 struct {
	URI       string
	Bucket    string
	Key       string
	VersionID string
	Client    ObjectAPI
	Cache     *cacheutil.Cache
	Options   []tabular.Option
}

func (s *S3) String() string {
	return s.URI
}

// Load fetches the object, from cache when the version or ETag matches, and
// decodes it as a Table, as a workbook when the key names one. Fetch failures
// are reported as *tabular.LoadError.
func (s *S3) Load(ctx context.Context, key string) (*tabular.Table, error) {
	data, err := s.fetch(ctx)
	if err != nil {
		return nil, &tabular.LoadError{Source: s.URI, Err: err}
	}
	return tabular.Decode(bytes.NewReader(data), s.URI, key, s.Options...)
}

func (s *S3) fetch(ctx context.Context) ([]byte, error) {
	head, err := s.Client.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket:    awsv2.String(s.Bucket),
		Key:       awsv2.String(s.Key),
		VersionId: optional(s.VersionID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stat S3 object: %w", err)
	}

	// A version id names immutable content; otherwise the ETag does.
	cacheKey := s.VersionID
	if cacheKey == "" {
		cacheKey = awsv2.ToString(head.ETag)
	}
	subdirs := []string{s.Bucket, s.Key}

	if cacheKey != "" {
		if entry, ok := s.Cache.Read(subdirs, cacheKey); ok {
			return entry.Data, nil
		}
	}

	result, err := s.Client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket:    awsv2.String(s.Bucket),
		Key:       awsv2.String(s.Key),
		VersionId: optional(s.VersionID),
		IfMatch:   head.ETag,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object: %w", err)
	}
	log.Debugf("s3 object fetched: uri=%s size=%s", s.URI, humanize.Bytes(uint64(len(data))))

	if cacheKey != "" {
		if err := s.Cache.Write(subdirs, cacheKey, data); err != nil {
			log.WithError(err).Warn("failed to cache S3 object")
		}
	}

	return data, nil
}

// ParseS3URI splits s3://bucket/key?versionId=v into its parts.
func ParseS3URI(uri string) (bucket, key, version string, err error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid S3 URI %q: %w", uri, err)
	}
	if u.Scheme != "s3" {
		return "", "", "", fmt.Errorf("invalid S3 URI %q: scheme must be s3", uri)
	}

	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", "", fmt.Errorf("invalid S3 URI %q: expected s3://bucket/key", uri)
	}

	return bucket, key, u.Query().Get("versionId"), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return awsv2.String(s)
}
