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

// SecureRNG is a cryptographically secure random number generator.  It embeds
// the sampler, so all of the sampling methods are available directly on it.
//
// The sampling methods panic with an error that identifies as
// ErrCounterExhausted if the keystream is exhausted.  That can only happen
// for generators created with NewSecureSeeded with a counter close to the
// maximum of the primitive, or with the ChaCha20 primitive after 256 GiB of
// output without a reseed.
//
// A SecureRNG is not safe for concurrent use.
type SecureRNG struct {
	*uniform.Rand
	ks *keystream.Generator
}

func newSecure(ks *keystream.Generator) *SecureRNG {
	log.Tracef("Created secure generator using %s", ks.Primitive())
	return &SecureRNG{Rand: uniform.New(ks), ks: ks}
}

// NewSecure returns a ChaCha8 secure generator keyed from operating system
// entropy.
func NewSecure() (*SecureRNG, error) {
	return NewSecureWithPrimitive(entropy.OS, keystream.ChaCha8)
}

// NewSecureWithPrimitive returns a secure generator for the given keystream
// primitive keyed from the provided entropy source.
func NewSecureWithPrimitive(src entropy.Source, prim keystream.Primitive) (*SecureRNG, error) {
	ks, err := keystream.NewWithPrimitive(src, prim)
	if err != nil {
		return nil, err
	}
	return newSecure(ks), nil
}

// NewSecureSeeded returns a ChaCha8 secure generator with an explicit key,
// nonce, and starting block counter.  It is intended for reproducible tests
// and known answer checks.  Generators for secrets must be created with
// NewSecure.
func NewSecureSeeded(key, nonce []byte, counter uint64) (*SecureRNG, error) {
	ks, err := keystream.NewSeeded(keystream.ChaCha8, key, nonce, counter)
	if err != nil {
		return nil, err
	}
	return newSecure(ks), nil
}

// NewSecureDerived returns a ChaCha8 secure generator keyed by deriving a key
// and nonce from arbitrary length seed material under a context string.  The
// output is only as unpredictable as the seed material.
func NewSecureDerived(seed []byte, context string) *SecureRNG {
	return newSecure(keystream.NewDerived(keystream.ChaCha8, seed, context))
}

// Keystream returns the underlying keystream generator.
func (s *SecureRNG) Keystream() *keystream.Generator {
	return s.ks
}

// TryUint64 returns the next 64-bit word or an error that identifies as
// ErrCounterExhausted.
func (s *SecureRNG) TryUint64() (uint64, error) {
	return s.ks.TryUint64()
}

// Read fills p with random bytes.  It satisfies the io.Reader interface.
func (s *SecureRNG) Read(p []byte) (int, error) {
	return s.ks.Read(p)
}

// Fill fills all of p with random bytes.
func (s *SecureRNG) Fill(p []byte) error {
	return s.ks.Fill(p)
}

// Text returns n random characters of the alphabet.  An error that identifies
// as ErrLengthTooShort is returned when n is less than the minimum length of
// the alphabet.
func (s *SecureRNG) Text(a *textenc.Alphabet, n int) (string, error) {
	return textenc.Text(s.ks, a, n)
}

// AppendText appends n random characters of the alphabet to dst.
func (s *SecureRNG) AppendText(dst []byte, a *textenc.Alphabet, n int) ([]byte, error) {
	return textenc.AppendText(dst, s.ks, a, n)
}

// EncodeText fills all of dst with random characters of the alphabet without
// allocating.
func (s *SecureRNG) EncodeText(dst []byte, a *textenc.Alphabet) error {
	return textenc.Encode(dst, s.ks, a)
}

// Reseed rekeys the generator with fresh operating system entropy mixed with
// its current keystream.
func (s *SecureRNG) Reseed() error {
	return s.ks.Reseed()
}
