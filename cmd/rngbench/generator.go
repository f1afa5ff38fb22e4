// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/decred/dualrand"
	"github.com/decred/dualrand/entropy"
	"github.com/decred/dualrand/keystream"
	"github.com/decred/dualrand/uniform"
	"github.com/decred/dualrand/xoshiro"
)

// generator is the per-worker random source.  Each worker exclusively owns its
// generator.
type generator struct {
	*uniform.Rand

	// secure is only set for the keystream backed generators.
	secure *dualrand.SecureRNG
}

// reserve ensures a secure generator can produce at least the given number of
// words without exhausting its block counter, reseeding it otherwise.  It is a
// no-op for the fast generator.
func (g *generator) reserve(words uint64) error {
	if g.secure == nil {
		return nil
	}
	ks := g.secure.Keystream()
	blocks := words*8/keystream.BlockSize + keystream.BlocksPerBuffer*2
	if ks.Primitive().MaxCounter()-ks.Counter() > blocks {
		return nil
	}
	benchLog.Debugf("Reseeding %s keystream at block counter %d",
		ks.Primitive(), ks.Counter())
	return g.secure.Reseed()
}

// fill fills p from a secure generator, reseeding once when the keystream is
// exhausted.
func (g *generator) fill(p []byte) error {
	err := g.secure.Fill(p)
	if !errors.Is(err, dualrand.ErrCounterExhausted) {
		return err
	}
	ks := g.secure.Keystream()
	benchLog.Debugf("Reseeding exhausted %s keystream", ks.Primitive())
	if err := g.secure.Reseed(); err != nil {
		return err
	}
	return g.secure.Fill(p)
}

// newGenerators returns one independent generator per worker of the kind named
// by the provided generator name.
//
// Fast generators are jump-separated streams of a single xoshiro256++ or
// xoshiro512++ state, which is seeded from seed when it is nonzero and from
// the entropy source otherwise.  Secure generators are independently seeded from the entropy
// source.
func newGenerators(name string, workers int, seed uint64, src entropy.Source) ([]*generator, error) {
	gens := make([]*generator, 0, workers)
	switch name {
	case generatorFast:
		base := dualrand.NewFastSeeded(seed)
		if seed == 0 {
			var err error
			base, err = dualrand.NewFastFromSource(src)
			if err != nil {
				return nil, err
			}
		}
		for _, stream := range base.Streams(workers) {
			gens = append(gens, &generator{Rand: stream.Rand})
		}

	case generatorFast512:
		base := xoshiro.New512FromSeed(seed)
		if seed == 0 {
			var err error
			base, err = xoshiro.New512FromSource(src)
			if err != nil {
				return nil, err
			}
		}
		for _, stream := range base.Streams(workers) {
			gens = append(gens, &generator{Rand: uniform.New(stream)})
		}

	case generatorSecure, generatorChaCha20:
		prim := keystream.ChaCha8
		if name == generatorChaCha20 {
			prim = keystream.ChaCha20
		}
		for i := 0; i < workers; i++ {
			rng, err := dualrand.NewSecureWithPrimitive(src, prim)
			if err != nil {
				return nil, err
			}
			gens = append(gens, &generator{Rand: rng.Rand, secure: rng})
		}

	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
	return gens, nil
}

// entropySource returns the entropy source with the provided name.
func entropySource(name string) (entropy.Source, error) {
	switch name {
	case entropyOS:
		return entropy.OS, nil
	case entropyUserspace:
		return entropy.Userspace, nil
	}
	return nil, fmt.Errorf("unknown entropy source %q", name)
}
