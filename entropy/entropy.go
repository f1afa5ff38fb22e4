// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entropy provides access to operating system entropy for seeding
// random number generators.
//
// The operating system source is modeled as a stateless call.  It does not
// hold any process-wide state and relies on the thread safety of the
// underlying system facility, so it may be used concurrently without
// additional locking.
//
// A source backed by a userspace CSPRNG that is reseeded from the operating
// system is also provided for callers that seed many generators at once.
package entropy

import (
	"errors"
	"fmt"
)

// Source is a provider of entropy suitable for seeding generators.
// Implementations must be safe for concurrent use.
type Source interface {
	// Fill fills all of b with entropy or returns an error.
	Fill(b []byte) error
}

// SourceFunc is an adapter to allow the use of ordinary functions as a
// Source.
type SourceFunc func(b []byte) error

// Fill calls f(b).
func (f SourceFunc) Fill(b []byte) error {
	return f(b)
}

// osSource is the operating system entropy source.
type osSource struct{}

// Fill fills b with entropy obtained from the operating system.
func (osSource) Fill(b []byte) error {
	return fillOS(b)
}

// OS is the operating system entropy source.
var OS Source = osSource{}

// Fill fills all of b with entropy read from src.  Any failure reported by
// the source is returned as an error that identifies as
// ErrEntropyUnavailable.
func Fill(src Source, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	err := src.Fill(b)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrEntropyUnavailable) {
		return err
	}
	str := fmt.Sprintf("unable to read %d bytes of entropy: %v", len(b), err)
	return makeError(ErrEntropyUnavailable, str)
}
