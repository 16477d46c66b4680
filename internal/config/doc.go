// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for csv-compare's user
// configuration. The configuration is a YAML document named csv-compare.yaml
// in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/csv-compare.yaml or $HOME/.config/csv-compare.yaml
//   - macOS: $HOME/Library/Application Support/csv-compare.yaml
//   - Windows: %AppData%/csv-compare.yaml
//
// CSVCOMPARE_CFG_FILE overrides the location. A missing file is not an error
// for callers that supply defaults.
package config
