// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"
	"sync"

	"github.com/decred/dualrand/internal/progresslog"
	"github.com/jrick/bitset"
	"golang.org/x/sync/errgroup"
)

// batchSize is the number of values a worker generates between checks for
// cancellation and progress reports.
const batchSize = 1 << 16

// secureChunkSize is the size of the buffer secure bench workers fill per
// call.
const secureChunkSize = 4096

// runWorkers runs fn concurrently for each generator and waits for all of them
// to complete.  Workers stop early, without error, when the context is
// canceled.
func runWorkers(ctx context.Context, gens []*generator, fn func(ctx context.Context, g *generator) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, gen := range gens {
		gen := gen
		g.Go(func() error {
			return fn(ctx, gen)
		})
	}
	return g.Wait()
}

// batches calls fn with the size of each successive batch needed to produce
// count values until either all values are produced, the context is canceled,
// or fn returns an error.
func batches(ctx context.Context, count uint64, fn func(n uint64) error) error {
	for remaining := count; remaining > 0; {
		if ctx.Err() != nil {
			return nil
		}
		n := min(remaining, batchSize)
		if err := fn(n); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}

// benchResult houses the outcome of a throughput run.
type benchResult struct {
	words uint64
	bytes uint64
	sink  uint64
}

// runBench generates count words with each generator and reports the
// throughput through the provided progress logger.  Fast generators produce
// individual words while secure generators fill byte buffers directly from the
// keystream.
func runBench(ctx context.Context, gens []*generator, count uint64, plog *progresslog.Logger) (*benchResult, error) {
	var mtx sync.Mutex
	var sink uint64
	err := runWorkers(ctx, gens, func(ctx context.Context, g *generator) error {
		var local uint64
		var buf [secureChunkSize]byte
		err := batches(ctx, count, func(n uint64) error {
			if g.secure == nil {
				for i := uint64(0); i < n; i++ {
					local ^= g.Uint64()
				}
				plog.LogProgress(n, n*8, false)
				return nil
			}

			for remaining := n * 8; remaining > 0; {
				chunk := buf[:min(remaining, secureChunkSize)]
				if err := g.fill(chunk); err != nil {
					return err
				}
				local ^= uint64(chunk[0])
				remaining -= uint64(len(chunk))
			}
			plog.LogProgress(n, n*8, false)
			return nil
		})

		mtx.Lock()
		sink ^= local
		mtx.Unlock()
		return err
	})
	if err != nil {
		return nil, err
	}

	words, bytes := plog.Totals()
	return &benchResult{words: words, bytes: bytes, sink: sink}, nil
}

// monteCarloResult houses the outcome of a Monte Carlo estimate of pi.
type monteCarloResult struct {
	points   uint64
	inCircle uint64
}

// Pi returns the estimate of pi given by the ratio of points that landed inside
// the unit quarter circle.
func (r *monteCarloResult) Pi() float64 {
	if r.points == 0 {
		return 0
	}
	return 4 * float64(r.inCircle) / float64(r.points)
}

// runMonteCarlo estimates pi by sampling count points uniformly in the unit
// square with each generator and counting those within the unit quarter
// circle.
func runMonteCarlo(ctx context.Context, gens []*generator, count uint64, plog *progresslog.Logger) (*monteCarloResult, error) {
	var mtx sync.Mutex
	var result monteCarloResult
	err := runWorkers(ctx, gens, func(ctx context.Context, g *generator) error {
		var points, inCircle uint64
		err := batches(ctx, count, func(n uint64) error {
			if err := g.reserve(n * 2); err != nil {
				return err
			}
			for i := uint64(0); i < n; i++ {
				x, y := g.Float64(), g.Float64()
				if x*x+y*y <= 1 {
					inCircle++
				}
			}
			points += n
			plog.LogProgress(n, n*16, false)
			return nil
		})

		mtx.Lock()
		result.points += points
		result.inCircle += inCircle
		mtx.Unlock()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// moments tracks the running mean and variance of a series of samples with
// Welford's method.
type moments struct {
	n    uint64
	mean float64
	m2   float64
}

// add includes the sample in the running moments.
func (m *moments) add(x float64) {
	m.n++
	delta := x - m.mean
	m.mean += delta / float64(m.n)
	m.m2 += delta * (x - m.mean)
}

// merge combines the moments of another series into m.
func (m *moments) merge(o *moments) {
	if o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = *o
		return
	}
	n := m.n + o.n
	delta := o.mean - m.mean
	m.mean += delta * float64(o.n) / float64(n)
	m.m2 += o.m2 + delta*delta*float64(m.n)*float64(o.n)/float64(n)
	m.n = n
}

// variance returns the sample variance.
func (m *moments) variance() float64 {
	if m.n < 2 {
		return 0
	}
	return m.m2 / float64(m.n-1)
}

// dieFaces is the number of faces of the simulated die.
const dieFaces = 6

// maxLevel is the maximum level of the simulated geometric distribution.
const maxLevel = 32

// coupons is the number of distinct values drawn in each coupon collector
// round.
const coupons = 1024

// sampleResult houses the sample moments of the distributions exercised in
// sample mode.
type sampleResult struct {
	uniform     moments
	normal      moments
	exponential moments
	level       moments
	coupon      moments
	die         [dieFaces]uint64
}

// dieChiSquared returns the chi-squared statistic of the die rolls against a
// fair die.
func (r *sampleResult) dieChiSquared() float64 {
	var total uint64
	for _, c := range r.die {
		total += c
	}
	if total == 0 {
		return 0
	}
	expected := float64(total) / dieFaces
	var chi2 float64
	for _, c := range r.die {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	return chi2
}

// merge combines the results of another worker into r.
func (r *sampleResult) merge(o *sampleResult) {
	r.uniform.merge(&o.uniform)
	r.normal.merge(&o.normal)
	r.exponential.merge(&o.exponential)
	r.level.merge(&o.level)
	r.coupon.merge(&o.coupon)
	for i, c := range o.die {
		r.die[i] += c
	}
}

// geometricLevel returns a level in [0, maxLevel) where each level is half as
// likely as the previous one.
func geometricLevel(g *generator) int {
	const p = 0.5
	h, x := 0, p
	f := g.Float64Nonzero()
	for x > f && h+1 < maxLevel {
		h++
		x *= p
	}
	return h
}

// collectCoupons returns the number of draws from [0, n) needed until every
// value has been seen at least once.  The seen values are tracked in the
// provided set, which must hold at least n bits and is cleared on return.
func collectCoupons(g *generator, n int, seen bitset.Bytes) uint64 {
	var draws uint64
	for remaining := n; remaining > 0; draws++ {
		v := g.IntN(n)
		if !seen.Get(v) {
			seen.Set(v)
			remaining--
		}
	}
	for i := 0; i < n; i++ {
		seen.Unset(i)
	}
	return draws
}

// expectedCoupons returns the expected number of draws to collect all n
// coupons, n times the nth harmonic number.
func expectedCoupons(n int) float64 {
	var h float64
	for i := 1; i <= n; i++ {
		h += 1 / float64(i)
	}
	return float64(n) * h
}

// runSample draws count samples per worker from each of the supported
// distributions and accumulates their sample moments.
func runSample(ctx context.Context, gens []*generator, count uint64, plog *progresslog.Logger) (*sampleResult, error) {
	var mtx sync.Mutex
	var result sampleResult
	err := runWorkers(ctx, gens, func(ctx context.Context, g *generator) error {
		var local sampleResult
		seen := bitset.NewBytes(coupons)
		err := batches(ctx, count, func(n uint64) error {
			// The polar method rejects about a fifth of its candidate pairs,
			// so reserve generously.
			if err := g.reserve(n * 8); err != nil {
				return err
			}
			for i := uint64(0); i < n; i++ {
				local.uniform.add(g.Float64())
				z0, _ := g.NormFloat64Pair()
				local.normal.add(z0)
				local.exponential.add(g.ExpFloat64())
				local.level.add(float64(geometricLevel(g)))
				local.die[g.Uint64N(dieFaces)]++
			}

			// One coupon collector round per batch.
			if err := g.reserve(coupons * 16); err != nil {
				return err
			}
			draws := collectCoupons(g, coupons, seen)
			local.coupon.add(float64(draws))
			plog.LogProgress(n*5+draws, 0, false)
			return nil
		})

		mtx.Lock()
		result.merge(&local)
		mtx.Unlock()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// sampleExpectations are the theoretical means and variances of the uniform,
// standard normal, unit exponential, and truncated geometric distributions
// along with the expected length of a coupon collector round.
var sampleExpectations = struct {
	uniformMean, uniformVar float64
	normalMean, normalVar   float64
	expMean, expVar         float64
	levelMean               float64
	couponMean              float64
}{
	uniformMean: 0.5,
	uniformVar:  1.0 / 12,
	normalMean:  0,
	normalVar:   1,
	expMean:     1,
	expVar:      1,
	levelMean:   1 - math.Ldexp(1, -(maxLevel-1)),
	couponMean:  expectedCoupons(coupons),
}
