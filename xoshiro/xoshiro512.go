// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xoshiro

import (
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/decred/dualrand/entropy"
)

// StateSize512 is the size of the xoshiro512++ generator state in bytes.
const StateSize512 = 64

// jumpPoly512 and longJumpPoly512 are the characteristic polynomials of the
// xoshiro512++ state transition raised to 2^256 and 2^384 respectively.
var (
	jumpPoly512 = [8]uint64{
		0x33ed89b6e7a353f9, 0x760083d7955323be,
		0x2837f2fbb5f22fae, 0x4b8c5674d309511c,
		0xb11ac47a7ba28c25, 0xf1be7667092bcc1c,
		0x53851efdb6df0aaf, 0x1ebbc8b23eaf25db,
	}
	longJumpPoly512 = [8]uint64{
		0x11467fef8f921d28, 0xa2a819f2e79c8ea8,
		0xa8299fc284b3959a, 0xb4d347340ca63ee1,
		0x1cb0940bedbff6ce, 0xd956c5c4fa1f8e17,
		0x915e38fd4eda93bc, 0x5b3ccdfa5d7daca5,
	}
)

// Xoshiro512pp is a xoshiro512++ generator.  It has 512 bits of state and a
// period of 2^512 - 1, which makes it an alternative to Xoshiro256pp for
// massively parallel computations that need more streams.  The zero value is
// not a valid generator and must be created with one of the constructors.
type Xoshiro512pp struct {
	s [8]uint64
}

// New512 returns a xoshiro512++ generator seeded from the operating system
// entropy source.
func New512() (*Xoshiro512pp, error) {
	return New512FromSource(entropy.OS)
}

// New512FromSource returns a xoshiro512++ generator seeded with a single
// 64-byte read from the provided entropy source.  An all zero read results in
// an error that identifies as entropy.ErrEntropyUnavailable.
func New512FromSource(src entropy.Source) (*Xoshiro512pp, error) {
	var seed [StateSize512]byte
	if err := entropy.Fill(src, seed[:]); err != nil {
		return nil, err
	}

	var x Xoshiro512pp
	for i := range x.s {
		x.s[i] = binary.LittleEndian.Uint64(seed[i*8:])
	}
	if x.isZero() {
		str := fmt.Sprintf("entropy source returned %d zero bytes",
			StateSize512)
		return nil, entropy.Error{
			Err:         entropy.ErrEntropyUnavailable,
			Description: str,
		}
	}
	return &x, nil
}

// New512FromSeed returns a xoshiro512++ generator with its state expanded
// from the provided seed by eight successive SplitMix64 outputs.
func New512FromSeed(seed uint64) *Xoshiro512pp {
	var x Xoshiro512pp
	sm := splitMix64(seed)
	for i := range x.s {
		x.s[i] = sm.next()
	}
	return &x
}

// New512FromState returns a xoshiro512++ generator that uses the provided
// state verbatim.  The all zero state is replaced by the state
// New512FromSeed(0) produces.
func New512FromState(state [8]uint64) *Xoshiro512pp {
	x := Xoshiro512pp{s: state}
	if x.isZero() {
		return New512FromSeed(0)
	}
	return &x
}

func (x *Xoshiro512pp) isZero() bool {
	var or uint64
	for _, w := range x.s {
		or |= w
	}
	return or == 0
}

// Uint64 returns the next 64-bit output and advances the state by one step.
//
// This satisfies the math/rand/v2.Source interface.
func (x *Xoshiro512pp) Uint64() uint64 {
	s := &x.s
	result := bits.RotateLeft64(s[0]+s[2], 17) + s[2]

	t := s[1] << 11
	s[2] ^= s[0]
	s[5] ^= s[1]
	s[1] ^= s[2]
	s[7] ^= s[3]
	s[3] ^= s[4]
	s[4] ^= s[5]
	s[0] ^= s[6]
	s[6] ^= s[7]
	s[6] ^= t
	s[7] = bits.RotateLeft64(s[7], 21)

	return result
}

// State returns a copy of the current generator state.
func (x *Xoshiro512pp) State() [8]uint64 {
	return x.s
}

// Clone returns an independent copy of the generator.
func (x *Xoshiro512pp) Clone() *Xoshiro512pp {
	c := *x
	return &c
}

func (x *Xoshiro512pp) jump(poly *[8]uint64) {
	var acc [8]uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(1<<b) != 0 {
				for i := range acc {
					acc[i] ^= x.s[i]
				}
			}
			x.Uint64()
		}
	}
	x.s = acc
}

// Jump advances the generator by 2^256 steps.  It may be used to produce
// 2^256 non-overlapping subsequences for parallel computations.
func (x *Xoshiro512pp) Jump() {
	x.jump(&jumpPoly512)
}

// LongJump advances the generator by 2^384 steps.
func (x *Xoshiro512pp) LongJump() {
	x.jump(&longJumpPoly512)
}

// Streams returns n generators one Jump apart starting at the current state
// and advances x past all of them.  See Xoshiro256pp.Streams.
func (x *Xoshiro512pp) Streams(n int) []*Xoshiro512pp {
	if n <= 0 {
		return nil
	}
	streams := make([]*Xoshiro512pp, n)
	for i := range streams {
		streams[i] = x.Clone()
		x.Jump()
	}
	return streams
}
