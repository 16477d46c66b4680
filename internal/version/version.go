// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other csv-compare packages to avoid import cycles.

package version

import "runtime/debug"

// Name is the binary name used in usage and version output.
const Name = "csv-compare"

var Version = func() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}()

// String renders "<name> <version>".
func String() string {
	return Name + " " + Version
}
