// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"math"
	"testing"

	"github.com/decred/dualrand"
	"github.com/decred/dualrand/entropy"
	"github.com/decred/dualrand/internal/progresslog"
	"github.com/decred/slog"
	"github.com/jrick/bitset"
)

// testProgress returns a progress logger that discards its output.
func testProgress() *progresslog.Logger {
	return progresslog.New("Generated", "value", "values", slog.Disabled)
}

// TestNewGenerators ensures one generator of the requested kind is created per
// worker and that fast generators are reproducible from a seed.
func TestNewGenerators(t *testing.T) {
	t.Parallel()

	fastKinds := map[string]bool{generatorFast: true, generatorFast512: true}
	for _, name := range []string{generatorFast, generatorFast512,
		generatorSecure, generatorChaCha20} {

		gens, err := newGenerators(name, 3, 0, entropy.OS)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(gens) != 3 {
			t.Fatalf("%s: unexpected number of generators %d", name, len(gens))
		}
		for i, g := range gens {
			if (g.secure != nil) == fastKinds[name] {
				t.Fatalf("%s: generator %d has unexpected kind", name, i)
			}
		}
		if gens[0].Uint64() == gens[1].Uint64() {
			t.Fatalf("%s: workers produced identical first outputs", name)
		}
	}

	for name := range fastKinds {
		a, err := newGenerators(name, 2, 42, entropy.OS)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		b, err := newGenerators(name, 2, 42, entropy.OS)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		for i := range a {
			if a[i].Uint64() != b[i].Uint64() {
				t.Fatalf("%s: worker %d: seeded generators differ", name, i)
			}
		}
	}

	if _, err := newGenerators("bogus", 1, 0, entropy.OS); err == nil {
		t.Fatal("did not receive expected error for unknown generator")
	}
}

// TestRunBench ensures every worker generates the requested number of words
// for both generator kinds.
func TestRunBench(t *testing.T) {
	t.Parallel()

	const count = batchSize + 100
	for _, name := range []string{generatorFast, generatorSecure} {
		gens, err := newGenerators(name, 2, 0, entropy.OS)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		result, err := runBench(context.Background(), gens, count,
			testProgress())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if result.words != 2*count || result.bytes != 16*count {
			t.Fatalf("%s: unexpected totals -- got (%d, %d), want (%d, %d)",
				name, result.words, result.bytes, 2*count, 16*count)
		}
	}
}

// TestRunBenchReseed ensures a secure worker whose keystream is about to be
// exhausted reseeds and keeps going.
func TestRunBenchReseed(t *testing.T) {
	t.Parallel()

	key := make([]byte, 32)
	nonce := make([]byte, 8)
	rng, err := dualrand.NewSecureSeeded(key, nonce, math.MaxUint64-7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gens := []*generator{{Rand: rng.Rand, secure: rng}}
	const count = 1000
	result, err := runBench(context.Background(), gens, count, testProgress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.words != count {
		t.Fatalf("unexpected number of words -- got %d, want %d",
			result.words, count)
	}
	if ctr := rng.Keystream().Counter(); ctr > 1000 {
		t.Fatalf("keystream was not reseeded -- counter %d", ctr)
	}
}

// TestReserve ensures reserving words reseeds a secure generator only when its
// block counter cannot accommodate them.
func TestReserve(t *testing.T) {
	t.Parallel()

	key := make([]byte, 32)
	nonce := make([]byte, 8)
	rng, err := dualrand.NewSecureSeeded(key, nonce, math.MaxUint64-1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g := &generator{Rand: rng.Rand, secure: rng}
	if err := g.reserve(64); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctr := rng.Keystream().Counter(); ctr != math.MaxUint64-1000 {
		t.Fatalf("unexpected reseed -- counter %d", ctr)
	}
	if err := g.reserve(1 << 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctr := rng.Keystream().Counter(); ctr != 0 {
		t.Fatalf("expected reseed -- counter %d", ctr)
	}

	fast := &generator{Rand: dualrand.NewFastSeeded(1).Rand}
	if err := fast.reserve(math.MaxUint64 / 16); err != nil {
		t.Fatalf("unexpected error for fast generator: %v", err)
	}
}

// TestRunMonteCarlo ensures the Monte Carlo estimate of pi converges.
func TestRunMonteCarlo(t *testing.T) {
	t.Parallel()

	const count = 1 << 18
	gens, err := newGenerators(generatorFast, 4, 3, entropy.OS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := runMonteCarlo(context.Background(), gens, count,
		testProgress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.points != 4*count {
		t.Fatalf("unexpected number of points %d", result.points)
	}

	// The standard error with 2^20 points is about 0.0016.
	if pi := result.Pi(); math.Abs(pi-math.Pi) > 0.01 {
		t.Fatalf("estimate %v too far from pi", pi)
	}

	var empty monteCarloResult
	if empty.Pi() != 0 {
		t.Fatal("nonzero estimate without points")
	}
}

// TestRunSample ensures the sample moments agree with the theoretical values.
func TestRunSample(t *testing.T) {
	t.Parallel()

	const count = 1 << 16
	gens, err := newGenerators(generatorSecure, 2, 0, entropy.OS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := runSample(context.Background(), gens, count,
		testProgress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := &sampleExpectations
	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"uniform mean", result.uniform.mean, exp.uniformMean, 0.01},
		{"uniform variance", result.uniform.variance(), exp.uniformVar, 0.005},
		{"normal mean", result.normal.mean, exp.normalMean, 0.03},
		{"normal variance", result.normal.variance(), exp.normalVar, 0.05},
		{"exponential mean", result.exponential.mean, exp.expMean, 0.03},
		{"exponential variance", result.exponential.variance(), exp.expVar, 0.1},
		{"geometric mean", result.level.mean, exp.levelMean, 0.05},
	}
	for _, test := range tests {
		if math.Abs(test.got-test.want) > test.tol {
			t.Errorf("%s: got %v, want %v +/- %v", test.name, test.got,
				test.want, test.tol)
		}
	}

	var rolls uint64
	for _, c := range result.die {
		rolls += c
	}
	if rolls != 2*count {
		t.Fatalf("unexpected number of die rolls %d", rolls)
	}
	if result.coupon.n != 2 || result.coupon.mean < coupons {
		t.Fatalf("unexpected coupon rounds %+v", result.coupon)
	}

	// The 0.001 critical value for 5 degrees of freedom is 20.52.
	if chi2 := result.dieChiSquared(); chi2 > 20.52 {
		t.Fatalf("die chi-squared %v exceeds critical value", chi2)
	}
}

// TestMomentsMerge ensures merging moments gives the same result as
// accumulating every sample in one series.
func TestMomentsMerge(t *testing.T) {
	t.Parallel()

	samples := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10.5}
	var all, a, b moments
	for i, x := range samples {
		all.add(x)
		if i < 3 {
			a.add(x)
		} else {
			b.add(x)
		}
	}
	var merged moments
	merged.merge(&a)
	merged.merge(&b)
	merged.merge(&moments{})
	if merged.n != all.n || math.Abs(merged.mean-all.mean) > 1e-12 ||
		math.Abs(merged.variance()-all.variance()) > 1e-12 {

		t.Fatalf("mismatched moments -- got %+v, want %+v", merged, all)
	}
}

// TestCanceled ensures workers stop without error when the context is
// canceled.
func TestCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gens, err := newGenerators(generatorFast, 2, 5, entropy.OS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := runBench(ctx, gens, 1<<30, testProgress())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.words != 0 {
		t.Fatalf("unexpected words generated after cancel: %d", result.words)
	}
}

// TestCollectCoupons ensures the coupon collector rounds see every value, leave
// the set cleared, and take the expected number of draws on average.
func TestCollectCoupons(t *testing.T) {
	t.Parallel()

	const n, rounds = 256, 400
	gens, err := newGenerators(generatorFast, 1, 9, entropy.OS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := bitset.NewBytes(n)
	var m moments
	for i := 0; i < rounds; i++ {
		draws := collectCoupons(gens[0], n, seen)
		if draws < n {
			t.Fatalf("round %d: %d draws can not cover %d values", i, draws,
				n)
		}
		for v := 0; v < n; v++ {
			if seen.Get(v) {
				t.Fatalf("round %d: value %d not cleared", i, v)
			}
		}
		m.add(float64(draws))
	}

	// The expectation is about 1567.8 draws with a standard deviation of about
	// 328, so the mean of 400 rounds has a standard error of about 16.4.
	want := expectedCoupons(n)
	if math.Abs(want-1567.83) > 0.01 {
		t.Fatalf("unexpected expectation %v", want)
	}
	if math.Abs(m.mean-want) > 100 {
		t.Fatalf("mean draws %v too far from %v", m.mean, want)
	}
}

// TestEntropySource ensures the named entropy sources resolve and seed
// generators.
func TestEntropySource(t *testing.T) {
	t.Parallel()

	for _, name := range []string{entropyOS, entropyUserspace} {
		src, err := entropySource(name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		gens, err := newGenerators(generatorSecure, 2, 0, src)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if gens[0].Uint64() == gens[1].Uint64() {
			t.Fatalf("%s: workers produced identical first outputs", name)
		}
	}
	if _, err := entropySource("dice"); err == nil {
		t.Fatal("did not receive expected error for unknown source")
	}
}
