// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"runtime"
	"strings"
	"testing"
)

// TestSemVerParsing ensures parsing a semantic version string works as
// expected.
func TestSemVerParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ver     string // semantic version string to parse
		want    SemVer // expected components
		invalid bool   // expected error
	}{{
		ver:  "0.0.4",
		want: SemVer{Patch: 4},
	}, {
		ver:  "10.20.30",
		want: SemVer{Major: 10, Minor: 20, Patch: 30},
	}, {
		ver: "1.1.2-prerelease+meta",
		want: SemVer{Major: 1, Minor: 1, Patch: 2, PreRelease: "prerelease",
			BuildMetadata: "meta"},
	}, {
		ver:  "1.1.2+meta-valid",
		want: SemVer{Major: 1, Minor: 1, Patch: 2, BuildMetadata: "meta-valid"},
	}, {
		ver:  "1.0.0-alpha.beta.1",
		want: SemVer{Major: 1, PreRelease: "alpha.beta.1"},
	}, {
		ver:  "1.0.0-pre",
		want: SemVer{Major: 1, PreRelease: "pre"},
	}, {
		ver: "1.0.0-rc.1+build.123",
		want: SemVer{Major: 1, PreRelease: "rc.1",
			BuildMetadata: "build.123"},
	}, {
		ver:  "2.0.0+build.1848",
		want: SemVer{Major: 2, BuildMetadata: "build.1848"},
	}, {
		ver:  "1.0.0-0A.is.legal",
		want: SemVer{Major: 1, PreRelease: "0A.is.legal"},
	}, {
		ver:     "1",
		invalid: true,
	}, {
		ver:     "1.2",
		invalid: true,
	}, {
		ver:     "1.2.3-0123",
		invalid: true,
	}, {
		ver:     "01.1.1",
		invalid: true,
	}, {
		ver:     "1.2.3.DEV",
		invalid: true,
	}, {
		ver:     "1.2-SNAPSHOT",
		invalid: true,
	}, {
		ver:     "+invalid",
		invalid: true,
	}, {
		ver:     "1.2.3-alpha_beta",
		invalid: true,
	}, {
		ver:     "99999999999999999999999.999999999999999999.99999999999999999",
		invalid: true,
	}}

	for _, test := range tests {
		got, err := ParseSemVer(test.ver)
		if test.invalid {
			if err == nil {
				t.Errorf("%q: did not receive expected error", test.ver)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected err: %v", test.ver, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q: mismatched components -- got %+v, want %+v",
				test.ver, got, test.want)
			continue
		}

		// Formatting the parsed components must reproduce the input.
		if s := got.String(); s != test.ver {
			t.Errorf("%q: mismatched string -- got %q", test.ver, s)
		}
	}
}

// TestNormalizeString ensures normalizing strings works as expected.
func TestNormalizeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "abcdefghijklmnopqrstuvwxyz", want: "abcdefghijklmnopqrstuvwxyz"},
		{in: "ABCDEFGHIJKLMNOPQRSTUVWXYZ", want: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{in: "0123456789-.", want: "0123456789-."},
		{in: "!@#$%^&*()_+=,/\\", want: ""},
		{in: "2af41f2b4-dirty", want: "2af41f2b4-dirty"},
		{in: "ab cd\tef\nλ", want: "abcdef"},
	}

	for _, test := range tests {
		if got := NormalizeString(test.in); got != test.want {
			t.Errorf("%q: unexpected normalized string -- got %q, want %q",
				test.in, got, test.want)
		}
	}
}

// TestVersion ensures the package version is a valid semantic version and is
// reported by the full description.
func TestVersion(t *testing.T) {
	t.Parallel()

	if _, err := ParseSemVer(Version); err != nil {
		t.Fatalf("invalid package version %q: %v", Version, err)
	}
	if got := Parsed().String(); got != Version {
		t.Fatalf("mismatched parsed version -- got %q, want %q", got, Version)
	}
	if _, err := ParseSemVer(String()); err != nil {
		t.Fatalf("invalid reported version %q: %v", String(), err)
	}

	full := Full("rngbench")
	for _, want := range []string{"rngbench version ", runtime.Version(),
		runtime.GOOS + "/" + runtime.GOARCH} {

		if !strings.Contains(full, want) {
			t.Errorf("full version %q does not contain %q", full, want)
		}
	}
}
