// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dualrand

import (
	"github.com/decred/dualrand/entropy"
	"github.com/decred/dualrand/uniform"
	"github.com/decred/dualrand/xoshiro"
)

// FastRNG is a fast non-cryptographic random number generator.  It embeds the
// sampler, so all of the sampling methods are available directly on it.
//
// A FastRNG is not safe for concurrent use.
type FastRNG struct {
	*uniform.Rand
	x *xoshiro.Xoshiro256pp
}

func newFast(x *xoshiro.Xoshiro256pp) *FastRNG {
	return &FastRNG{Rand: uniform.New(x), x: x}
}

// NewFast returns a fast generator seeded from operating system entropy.
func NewFast() (*FastRNG, error) {
	return NewFastFromSource(entropy.OS)
}

// NewFastFromSource returns a fast generator seeded from the provided entropy
// source.
func NewFastFromSource(src entropy.Source) (*FastRNG, error) {
	x, err := xoshiro.NewFromSource(src)
	if err != nil {
		return nil, err
	}
	return newFast(x), nil
}

// NewFastSeeded returns a fast generator with its state expanded from a
// 64-bit seed.  The same seed always produces the same sequence.
func NewFastSeeded(seed uint64) *FastRNG {
	return newFast(xoshiro.NewFromSeed(seed))
}

// NewFastFromState returns a fast generator that starts from the provided
// state.  The all zero state is replaced as described by
// xoshiro.NewFromState.
func NewFastFromState(state [4]uint64) *FastRNG {
	return newFast(xoshiro.NewFromState(state))
}

// State returns a copy of the current generator state.
func (f *FastRNG) State() [4]uint64 {
	return f.x.State()
}

// Jump advances the generator by 2^128 outputs.
func (f *FastRNG) Jump() {
	f.x.Jump()
}

// LongJump advances the generator by 2^192 outputs.
func (f *FastRNG) LongJump() {
	f.x.LongJump()
}

// Split returns a generator that continues from the current state and then
// advances f by 2^128 outputs, so the two never overlap in practice.
func (f *FastRNG) Split() *FastRNG {
	return newFast(f.x.Streams(1)[0])
}

// Streams returns n generators that are each 2^128 outputs apart for use by
// independent workers, and advances f past all of them.
func (f *FastRNG) Streams(n int) []*FastRNG {
	xs := f.x.Streams(n)
	if xs == nil {
		return nil
	}
	streams := make([]*FastRNG, len(xs))
	for i, x := range xs {
		streams[i] = newFast(x)
	}
	return streams
}
