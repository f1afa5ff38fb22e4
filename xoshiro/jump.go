// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xoshiro

// jumpPoly and longJumpPoly are the characteristic polynomials of the state
// transition raised to 2^128 and 2^192 respectively.
var (
	jumpPoly = [4]uint64{
		0x180ec6d33cfd0aba, 0xd5a61266f0c9392c,
		0xa9582618e03fc9aa, 0x39abdc4529b1661c,
	}
	longJumpPoly = [4]uint64{
		0x76e15d3efefdcbbf, 0xc5004e441c522fb3,
		0x77710069854ee241, 0x39109bb02acbe635,
	}
)

// jump advances the state by the distance encoded by the polynomial.  It
// always takes 256 steps regardless of the distance.
func (x *Xoshiro256pp) jump(poly *[4]uint64) {
	var s0, s1, s2, s3 uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(1<<b) != 0 {
				s0 ^= x.s[0]
				s1 ^= x.s[1]
				s2 ^= x.s[2]
				s3 ^= x.s[3]
			}
			x.Uint64()
		}
	}
	x.s[0], x.s[1], x.s[2], x.s[3] = s0, s1, s2, s3
}

// Jump advances the generator by 2^128 steps.  It is equivalent to that many
// calls to Uint64 and may be used to produce 2^128 non-overlapping
// subsequences for parallel computations.
func (x *Xoshiro256pp) Jump() {
	x.jump(&jumpPoly)
}

// LongJump advances the generator by 2^192 steps.  It may be used to produce
// 2^64 starting points, from each of which Jump will produce a further 2^64
// non-overlapping subsequences, for distributed computations.
func (x *Xoshiro256pp) LongJump() {
	x.jump(&longJumpPoly)
}

// Streams returns n generators for use by independent workers.  The first
// starts at the current state of x and each subsequent one is one Jump ahead
// of the previous.  Upon return x has been advanced by n jumps so that it does
// not overlap with any of the returned streams.
func (x *Xoshiro256pp) Streams(n int) []*Xoshiro256pp {
	if n <= 0 {
		return nil
	}
	streams := make([]*Xoshiro256pp, n)
	for i := range streams {
		streams[i] = x.Clone()
		x.Jump()
	}
	return streams
}
