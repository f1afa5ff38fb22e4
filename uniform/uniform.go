// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Uniform random algorithms modified from the Go math/rand/v2 package with
// the following license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package uniform derives unbiased bounded integers, ranges, booleans, and
// floating point values from a source of uniformly distributed 64-bit words.
//
// The same sampler serves both the fast and the secure generators.  All of
// the sampling methods are allocation free and, aside from the rejection
// loops noted on the individual methods, consume exactly one word per call.
package uniform

import (
	"fmt"
	"math"
	"math/bits"
)

// Source is a source of uniformly distributed 64-bit words.  It is
// compatible with the math/rand/v2.Source interface.
type Source interface {
	Uint64() uint64
}

// Rand derives values with specific distributions from a Source.  A Rand is
// not safe for concurrent use unless its source is.
type Rand struct {
	src Source
}

// New returns a Rand that draws words from src.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// Uint64 returns a uniform random uint64 drawn directly from the source.
func (r *Rand) Uint64() uint64 {
	return r.src.Uint64()
}

// Uint32 returns a uniform random uint32 made from the high bits of a word.
func (r *Rand) Uint32() uint32 {
	return uint32(r.src.Uint64() >> 32)
}

// Uint16 returns a uniform random uint16 made from the high bits of a word.
func (r *Rand) Uint16() uint16 {
	return uint16(r.src.Uint64() >> 48)
}

// Uint8 returns a uniform random uint8 made from the high bits of a word.
func (r *Rand) Uint8() uint8 {
	return uint8(r.src.Uint64() >> 56)
}

// Bits returns a uniform random value in [0, 2^n) made from the high n bits of
// a word.  It panics if n > 64.
func (r *Rand) Bits(n uint) uint64 {
	if n > 64 {
		panic(fmt.Sprintf("uniform: invalid bit count %d", n))
	}
	if n == 0 {
		r.src.Uint64()
		return 0
	}
	return r.src.Uint64() >> (64 - n)
}

// Bool returns true or false with equal probability.  The high bit of the
// word decides the outcome.
func (r *Rand) Bool() bool {
	return r.src.Uint64()>>63 == 1
}

// uint64n returns a uniform random value in [0, n) without modulo bias.  n
// must not be zero.
func (r *Rand) uint64n(n uint64) uint64 {
	// Suppose we have a uint64 x uniform in the range [0,2⁶⁴)
	// and want to reduce it to the range [0,n) preserving exact uniformity.
	// We can simulate a scaling arbitrary precision x * (n/2⁶⁴) by
	// the high bits of a double-width multiply of x*n, meaning (x*n)/2⁶⁴.
	// Since there are 2⁶⁴ possible inputs x and only n possible outputs,
	// the output is necessarily biased if n does not divide 2⁶⁴.
	// In general (x*n)/2⁶⁴ = k for x*n in [k*2⁶⁴,(k+1)*2⁶⁴).
	// There are either floor(2⁶⁴/n) or ceil(2⁶⁴/n) possible products
	// in that range, depending on k.
	// But suppose we reject the sample and try again when
	// x*n is in [k*2⁶⁴, k*2⁶⁴+(2⁶⁴%n)), meaning rejecting fewer than n possible
	// outcomes out of the 2⁶⁴.
	// Now there are exactly floor(2⁶⁴/n) possible ways to produce
	// each output value k, so we've restored uniformity.
	// To get valid uint64 math, 2⁶⁴ % n = (2⁶⁴ - n) % n = -n % n.
	// The division is only needed when lo < n, which is rare unless n is
	// close to 2⁶⁴.
	//
	// Powers of two take the same path and reduce to the high bits of x.
	// A bound of one consumes a word and always produces zero.
	//
	// See also:
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	// https://lemire.me/blog/2016/06/30/fast-random-shuffling
	hi, lo := bits.Mul64(r.src.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(r.src.Uint64(), n)
		}
	}
	return hi
}

// Bound returns a uniform random value in [0, n) without modulo bias.  An
// error that identifies as ErrInvalidBound is returned when n is zero.
//
// A word is rejected and redrawn with probability less than n/2^64.
func (r *Rand) Bound(n uint64) (uint64, error) {
	if n == 0 {
		return 0, makeError(ErrInvalidBound, "bound must be positive")
	}
	return r.uint64n(n), nil
}

// BoundInclusive returns a uniform random value in [0, n] without modulo
// bias.
func (r *Rand) BoundInclusive(n uint64) uint64 {
	if n == math.MaxUint64 {
		return r.src.Uint64()
	}
	return r.uint64n(n + 1)
}

// Uint64N returns a uniform random value in [0, n) without modulo bias.
// Panics if n == 0.
func (r *Rand) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("uniform: invalid argument to Uint64N")
	}
	return r.uint64n(n)
}

// IntN returns, as an int, a uniform random non-negative value in [0, n)
// without modulo bias.
// Panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("uniform: invalid argument to IntN")
	}
	return int(r.uint64n(uint64(n)))
}

// Range returns a uniform random value in [min, max) without modulo bias.  An
// error that identifies as ErrInvalidRange is returned when min >= max.
//
// The full span of int64 is supported since the width of the range is
// computed with wrapping unsigned arithmetic.
func (r *Rand) Range(min, max int64) (int64, error) {
	if min >= max {
		str := fmt.Sprintf("invalid range [%d, %d)", min, max)
		return 0, makeError(ErrInvalidRange, str)
	}
	span := uint64(max) - uint64(min)
	return int64(uint64(min) + r.uint64n(span)), nil
}

// RangeInclusive returns a uniform random value in [min, max] without modulo
// bias.  An error that identifies as ErrInvalidRange is returned when
// min > max.
func (r *Rand) RangeInclusive(min, max int64) (int64, error) {
	if min > max {
		str := fmt.Sprintf("invalid range [%d, %d]", min, max)
		return 0, makeError(ErrInvalidRange, str)
	}
	span := uint64(max) - uint64(min)
	return int64(uint64(min) + r.BoundInclusive(span)), nil
}
