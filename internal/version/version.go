// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information shared by the utilities
// provided with dualrand.
package version

import (
	"fmt"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// semanticAlphabet is the set of characters permitted in the pre-release and
// build metadata identifiers of a semantic version.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE matches a semantic version 2.0.0 string and captures the major,
// minor, patch, pre-release, and build metadata portions.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the semantic version of the utilities.
//
// It may be overridden at link time with:
// '-ldflags "-X github.com/decred/dualrand/internal/version.Version=fullsemver"'
//
// It MUST be a full semantic version or the package panics on init.
var Version = "1.0.0-pre"

// SemVer houses the individual components of a semantic version.
type SemVer struct {
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
}

// String returns the version formatted per semantic versioning 2.0.0.
func (v SemVer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.BuildMetadata != "" {
		sb.WriteByte('+')
		sb.WriteString(v.BuildMetadata)
	}
	return sb.String()
}

// current is the parsed form of Version.
var current SemVer

// ParseSemVer parses the passed string into its semantic version components.
func ParseSemVer(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var v SemVer
	fields := []struct {
		name string
		dst  *uint
	}{
		{"major", &v.Major},
		{"minor", &v.Minor},
		{"patch", &v.Patch},
	}
	for i, field := range fields {
		n, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return SemVer{}, fmt.Errorf("malformed semver %s: %w", field.name,
				err)
		}
		*field.dst = uint(n)
	}

	for _, part := range []struct{ name, s string }{
		{"pre-release", m[4]},
		{"buildmetadata", m[5]},
	} {
		if i := strings.IndexFunc(part.s, notSemantic); i != -1 {
			return SemVer{}, fmt.Errorf("malformed semver %s: %q invalid",
				part.name, part.s[i])
		}
	}
	v.PreRelease, v.BuildMetadata = m[4], m[5]
	return v, nil
}

// notSemantic reports whether r may not appear in a pre-release or build
// metadata identifier.
func notSemantic(r rune) bool {
	return !strings.ContainsRune(semanticAlphabet, r)
}

func init() {
	var err error
	current, err = ParseSemVer(Version)
	if err != nil {
		panic(err)
	}
}

// Parsed returns the components of the utility version.
func Parsed() SemVer {
	return current
}

// String returns the utility version as a semantic version string.  When the
// version carries no build metadata and the binary was built from a version
// control checkout, the abbreviated commit is attached as build metadata.
func String() string {
	v := current
	if v.BuildMetadata == "" {
		v.BuildMetadata = NormalizeString(vcsCommitID())
	}
	return v.String()
}

// Full returns a one line description of the named application, its version,
// and the Go runtime it was built with, suitable for --version output.
func Full(appName string) string {
	return fmt.Sprintf("%s version %s (Go version %s %s/%s)", appName,
		String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// NormalizeString returns the passed string stripped of every character that
// is not permitted in pre-release and build metadata identifiers.
func NormalizeString(str string) string {
	return strings.Map(func(r rune) rune {
		if notSemantic(r) {
			return -1
		}
		return r
	}, str)
}
