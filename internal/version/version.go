// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Do not import any other brix packages to avoid import cycles.

package version

import "runtime/debug"

// Version is overridden at link time with -X for release builds. Otherwise it
// falls back to the module version recorded in the build info.
var Version = ""

// String returns the version to report for --version.
func String() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
