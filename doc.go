// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package dualrand provides a fast non-cryptographic random number generator and
a cryptographically secure random number generator behind a common sampling
API.

# Fast Generator

FastRNG is backed by xoshiro256++.  It is intended for simulations, sampling,
randomized algorithms, and tests.  Its output is predictable from a handful of
observed values, so it must never be used for keys, tokens, nonces, or other
secrets.

	rng, err := dualrand.NewFast()
	if err != nil {
		// Handle error.
	}
	roll, _ := rng.Range(1, 7)

Reproducible sequences are obtained with NewFastSeeded and NewFastFromState.

# Secure Generator

SecureRNG serves the keystream of ChaCha8 keyed from operating system entropy.
It is intended for tokens, nonces, and secrets.

	rng, err := dualrand.NewSecure()
	if err != nil {
		// Handle error.
	}
	token, err := rng.Text(dualrand.Base64URL, dualrand.Base64URL.MinLen())

# Sampling

Both generators embed the same sampler, so bounded integers, ranges,
booleans, floating point values, and shuffles behave identically for both.
Bounded integers are unbiased.  Invalid bounds and ranges are reported with
errors that identify as ErrInvalidBound and ErrInvalidRange.

# Concurrency

No generator is safe for concurrent use.  Give each goroutine its own
generator.  For the fast generator, Split and Streams hand out generators that
are at least 2^128 outputs apart.  For the secure generator, create one
generator per goroutine with NewSecure.

# Errors

The errors returned by this package and its sub-packages support errors.Is
and errors.As.  The error kinds are re-exported here for convenience.
*/
package dualrand
