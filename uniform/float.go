// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniform

import (
	"math"
)

const (
	// f64Mant and f32Mant are the number of significant bits, including the
	// implicit bit, of float64 and float32 values.
	f64Mant = 53
	f32Mant = 24

	f64Scale = 1.0 / (1 << f64Mant)
	f32Scale = 1.0 / (1 << f32Mant)
)

// Float64 returns a uniform random value in [0.0, 1.0).  The high 53 bits of a
// word are scaled by 2^-53 so every multiple of 2^-53 in the interval is
// equally likely.
func (r *Rand) Float64() float64 {
	return float64(r.src.Uint64()>>(64-f64Mant)) * f64Scale
}

// Float32 returns a uniform random value in [0.0, 1.0) made from the high 24
// bits of a word.
func (r *Rand) Float32() float32 {
	return float32(r.src.Uint64()>>(64-f32Mant)) * f32Scale
}

// Float64Nonzero returns a uniform random value in (0.0, 1.0].
func (r *Rand) Float64Nonzero() float64 {
	return float64(r.src.Uint64()>>(64-f64Mant)+1) * f64Scale
}

// Float32Nonzero returns a uniform random value in (0.0, 1.0].
func (r *Rand) Float32Nonzero() float32 {
	return float32(r.src.Uint64()>>(64-f32Mant)+1) * f32Scale
}

// Float64Wide returns a uniform random value in (-1.0, 1.0).
//
// The word is redrawn with probability 2^-54.
func (r *Rand) Float64Wide() float64 {
	for {
		x := int64(r.src.Uint64() >> (64 - f64Mant - 1))
		if x != 0 {
			return float64(x-1<<f64Mant) * f64Scale
		}
	}
}

// Float32Wide returns a uniform random value in (-1.0, 1.0).
//
// The word is redrawn with probability 2^-25.
func (r *Rand) Float32Wide() float32 {
	for {
		x := int32(r.src.Uint64() >> (64 - f32Mant - 1))
		if x != 0 {
			return float32(x-1<<f32Mant) * f32Scale
		}
	}
}

// NormFloat64Pair returns two independent normally distributed values with
// mean 0 and standard deviation 1.
//
// It uses the Marsaglia polar method, which rejects a pair of points that
// falls outside the unit circle with probability 1 - π/4.
func (r *Rand) NormFloat64Pair() (float64, float64) {
	for {
		x := r.Float64Wide()
		y := r.Float64Wide()
		s := x*x + y*y
		if s < 1 && s != 0 {
			t := math.Sqrt(-2 * math.Log(s) / s)
			return x * t, y * t
		}
	}
}

// NormalPair returns two independent normally distributed values with the
// provided mean and standard deviation.
func (r *Rand) NormalPair(mean, stddev float64) (float64, float64) {
	x, y := r.NormFloat64Pair()
	return x*stddev + mean, y*stddev + mean
}

// ExpFloat64 returns an exponentially distributed value with rate 1.  The
// result is never negative.
func (r *Rand) ExpFloat64() float64 {
	// Log of a value in (0, 1] is never positive.  Abs avoids returning -0.
	return math.Abs(math.Log(r.Float64Nonzero()))
}

// Exponential returns an exponentially distributed value with the provided
// rate.
func (r *Rand) Exponential(lambda float64) float64 {
	return r.ExpFloat64() / lambda
}
