// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dualrand

import (
	"github.com/decred/dualrand/entropy"
	"github.com/decred/dualrand/keystream"
	"github.com/decred/dualrand/textenc"
	"github.com/decred/dualrand/uniform"
)

// These error kinds are re-exported from the sub-packages so callers only need
// to import this package to check for them with errors.Is.
const (
	// ErrEntropyUnavailable indicates the entropy source failed.
	ErrEntropyUnavailable = entropy.ErrEntropyUnavailable

	// ErrInvalidBound indicates a bound of zero.
	ErrInvalidBound = uniform.ErrInvalidBound

	// ErrInvalidRange indicates a minimum that is not less than the maximum.
	ErrInvalidRange = uniform.ErrInvalidRange

	// ErrLengthTooShort indicates text shorter than the alphabet minimum.
	ErrLengthTooShort = textenc.ErrLengthTooShort

	// ErrCounterExhausted indicates the secure keystream is exhausted.
	ErrCounterExhausted = keystream.ErrCounterExhausted

	// ErrInvalidSeed indicates an invalid explicit key, nonce, or counter.
	ErrInvalidSeed = keystream.ErrInvalidSeed
)

// The predefined text alphabets.
var (
	Base16    = textenc.Base16
	Base32    = textenc.Base32
	Base32Hex = textenc.Base32Hex
	Base62    = textenc.Base62
	Base64    = textenc.Base64
	Base64URL = textenc.Base64URL
)
