// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xoshiro implements the xoshiro256++ and xoshiro512++ pseudorandom
// number generators.
//
// xoshiro256++ is a fast, non-cryptographic generator with 256 bits of state
// and a period of 2^256 - 1.  It is well suited for simulations and sampling
// and must NOT be used for keys, tokens, nonces, or any other secret.
// xoshiro512++ trades twice the state for a period of 2^512 - 1.
//
// A generator is not safe for concurrent use.  Independent streams for
// concurrent workers are obtained with Jump, LongJump, or Streams, each of
// which hands out generators separated by at least 2^128 outputs.
package xoshiro

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/decred/dualrand/entropy"
)

// StateSize is the size of the generator state in bytes.
const StateSize = 32

// Xoshiro256pp is a xoshiro256++ generator.  The zero value is not a valid
// generator and must be created with one of the constructors.
type Xoshiro256pp struct {
	s [4]uint64
}

// New returns a generator seeded from the operating system entropy source.
func New() (*Xoshiro256pp, error) {
	return NewFromSource(entropy.OS)
}

// NewFromSource returns a generator seeded with a single 32-byte read from the
// provided entropy source.  The bytes are interpreted as four little-endian
// words.
//
// An all zero read is the only state the generator can not escape and is
// treated as a broken entropy source, so it results in an error that
// identifies as entropy.ErrEntropyUnavailable.
func NewFromSource(src entropy.Source) (*Xoshiro256pp, error) {
	var seed [StateSize]byte
	if err := entropy.Fill(src, seed[:]); err != nil {
		return nil, err
	}

	var x Xoshiro256pp
	for i := range x.s {
		x.s[i] = binary.LittleEndian.Uint64(seed[i*8:])
	}
	if x.isZero() {
		str := fmt.Sprintf("entropy source returned %d zero bytes", StateSize)
		return nil, entropy.Error{
			Err:         entropy.ErrEntropyUnavailable,
			Description: str,
		}
	}
	return &x, nil
}

// NewFromSeed returns a generator with its state expanded from the provided
// 64-bit seed by four successive SplitMix64 outputs.  The same seed always
// produces the same sequence.
func NewFromSeed(seed uint64) *Xoshiro256pp {
	var x Xoshiro256pp
	sm := splitMix64(seed)
	for i := range x.s {
		x.s[i] = sm.next()
	}
	return &x
}

// NewFromState returns a generator that uses the provided state verbatim.
// This is primarily useful for reproducing reference sequences.
//
// The all zero state is a fixed point of the generator, so it is replaced by
// the state NewFromSeed(0) produces.
func NewFromState(state [4]uint64) *Xoshiro256pp {
	x := Xoshiro256pp{s: state}
	if x.isZero() {
		return NewFromSeed(0)
	}
	return &x
}

// isZero returns whether or not the state is all zero.
func (x *Xoshiro256pp) isZero() bool {
	return x.s[0]|x.s[1]|x.s[2]|x.s[3] == 0
}

// Uint64 returns the next 64-bit output and advances the state by one step.
//
// This satisfies the math/rand/v2.Source interface.
func (x *Xoshiro256pp) Uint64() uint64 {
	s0, s1, s2, s3 := x.s[0], x.s[1], x.s[2], x.s[3]
	result := bits.RotateLeft64(s0+s3, 23) + s0

	t := s1 << 17
	s2 ^= s0
	s3 ^= s1
	s1 ^= s2
	s0 ^= s3
	s2 ^= t
	s3 = bits.RotateLeft64(s3, 45)

	x.s[0], x.s[1], x.s[2], x.s[3] = s0, s1, s2, s3
	return result
}

// State returns a copy of the current generator state.
func (x *Xoshiro256pp) State() [4]uint64 {
	return x.s
}

// Clone returns an independent copy of the generator that will produce the
// same sequence as x.
func (x *Xoshiro256pp) Clone() *Xoshiro256pp {
	c := *x
	return &c
}

// splitMix64 is the SplitMix64 generator.  It is only used to expand seeds.
type splitMix64 uint64

func (sm *splitMix64) next() uint64 {
	*sm += 0x9e3779b97f4a7c15
	z := uint64(*sm)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
