// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "runtime/debug"

// vcsCommitID returns the abbreviated revision recorded by the Go toolchain
// for builds from a git checkout, or an empty string when there is none.  A
// "-dirty" suffix marks builds with uncommitted changes.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	settings := make(map[string]string, len(bi.Settings))
	for _, bs := range bi.Settings {
		settings[bs.Key] = bs.Value
	}
	if settings["vcs"] != "git" {
		return ""
	}
	revision := settings["vcs.revision"]
	if len(revision) > 9 {
		revision = revision[:9]
	}
	if revision != "" && settings["vcs.modified"] == "true" {
		revision += "-dirty"
	}
	return revision
}
