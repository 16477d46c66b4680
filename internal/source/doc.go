// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source resolves command-line input specs into loadable inputs. A
// plain path is read from the filesystem; an s3://bucket/key URI (optionally
// with ?versionId=) is fetched from S3 and cached on disk by version or ETag.
package source
