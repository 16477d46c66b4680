// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/csvcompare/internal/log"
)

// Entry is a cached artifact on disk. Key is the clear-text key; the file name
// is its sha256.
type Entry struct {
	Key  string
	Path string
	Data []byte
}

// Cache stores downloaded inputs beneath Base.
type Cache struct {
	Base string
}

// Dir resolves the base cache directory.
// Precedence:
//  1. CSVCOMPARE_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/csv-compare
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("CSVCOMPARE_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "csv-compare"), true
	}
	return "", false
}

// Enabled returns true unless CSVCOMPARE_CACHE explicitly disables it ("0"/"false").
func Enabled() bool {
	enabled := os.Getenv("CSVCOMPARE_CACHE")
	return enabled != "0" && enabled != "false"
}

// New returns a Cache rooted at Dir, or nil when caching is disabled or no
// base directory can be resolved. A nil *Cache is safe to use and never hits.
func New() *Cache {
	if !Enabled() {
		log.Debug("cache disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	return &Cache{Base: base}
}

// EntryPath returns where the entry for clearKey beneath subdirs lives and
// whether a file currently exists there.
func (c *Cache) EntryPath(subdirs []string, clearKey string) (string, bool) {
	if c == nil {
		return "", false
	}
	p := filepath.Join(append(append([]string{c.Base}, subdirs...), encodeKey(clearKey))...)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return p, false
}

// Read returns the cached entry for clearKey, if present.
func (c *Cache) Read(subdirs []string, clearKey string) (*Entry, bool) {
	p, ok := c.EntryPath(subdirs, clearKey)
	if !ok {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", clearKey)
	return &Entry{Key: clearKey, Path: p, Data: b}, true
}

// Write stores data for clearKey beneath subdirs, creating directories as
// needed. Writing to a nil Cache is a no-op.
func (c *Cache) Write(subdirs []string, clearKey string, data []byte) error {
	if c == nil {
		return nil
	}
	dir := filepath.Join(append([]string{c.Base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	p := filepath.Join(dir, encodeKey(clearKey))
	if err := os.WriteFile(p, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s bytes=%d", clearKey, len(data))
	return nil
}

// Purge removes files older than hours. hours <= 0 disables purging.
func (c *Cache) Purge(hours int) error {
	if c == nil || hours <= 0 {
		return nil
	}

	maxAge := time.Duration(hours) * time.Hour
	err := filepath.Walk(c.Base, func(path string, info os.FileInfo, walkErr error) error {
		// Entries can vanish between listing and stat when runs overlap.
		if walkErr != nil {
			if os.IsNotExist(walkErr) {
				return nil
			}
			return walkErr
		}
		if info == nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			} else {
				log.Debugf("removed cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

func encodeKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
