// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/decred/dualrand/internal/progresslog"
	"github.com/decred/dualrand/internal/version"
	"github.com/decred/dualrand/keystream"
	flags "github.com/jessevdk/go-flags"
)

// run executes the workload selected by the configuration and logs its
// results.
func run(ctx context.Context, cfg *config) error {
	src, err := entropySource(cfg.Entropy)
	if err != nil {
		return err
	}
	gens, err := newGenerators(cfg.Generator, cfg.Workers, cfg.Seed, src)
	if err != nil {
		return err
	}
	if cfg.Generator != generatorFast {
		benchLog.Infof("ChaCha8 block implementation: %s",
			keystream.Implementation())
	}
	benchLog.Infof("Running %s with the %s generator: %d %s, %d values each",
		cfg.Mode, cfg.Generator, cfg.Workers,
		pickNoun(uint64(cfg.Workers), "worker", "workers"), cfg.Count)

	start := time.Now()
	switch cfg.Mode {
	case modeBench:
		plog := progresslog.New("Generated", "word", "words", benchLog)
		result, err := runBench(ctx, gens, cfg.Count, plog)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		benchLog.Infof("Generated %d words (%d bytes) in %v (%.2f MiB/s, "+
			"%.2f ns/word, checksum %016x)", result.words, result.bytes,
			elapsed.Round(time.Millisecond),
			float64(result.bytes)/elapsed.Seconds()/(1<<20),
			float64(elapsed.Nanoseconds())*float64(cfg.Workers)/
				float64(max(result.words, 1)), result.sink)

	case modeMonteCarlo:
		plog := progresslog.New("Sampled", "point", "points", benchLog)
		result, err := runMonteCarlo(ctx, gens, cfg.Count, plog)
		if err != nil {
			return err
		}
		pi := result.Pi()
		benchLog.Infof("Sampled %d points in %v", result.points,
			time.Since(start).Round(time.Millisecond))
		benchLog.Infof("Constant:  %.10f", math.Pi)
		benchLog.Infof("Simulated: %.10f", pi)
		benchLog.Infof("Delta between constant and simulated pi: %.3e",
			math.Abs(math.Pi-pi))

	case modeSample:
		plog := progresslog.New("Drew", "sample", "samples", benchLog)
		result, err := runSample(ctx, gens, cfg.Count, plog)
		if err != nil {
			return err
		}
		exp := &sampleExpectations
		benchLog.Infof("Drew %d samples per distribution in %v",
			result.normal.n, time.Since(start).Round(time.Millisecond))
		benchLog.Infof("uniform:     mean %.5f (want %.5f), variance "+
			"%.5f (want %.5f)", result.uniform.mean, exp.uniformMean,
			result.uniform.variance(), exp.uniformVar)
		benchLog.Infof("normal:      mean %.5f (want %.5f), variance "+
			"%.5f (want %.5f)", result.normal.mean, exp.normalMean,
			result.normal.variance(), exp.normalVar)
		benchLog.Infof("exponential: mean %.5f (want %.5f), variance "+
			"%.5f (want %.5f)", result.exponential.mean, exp.expMean,
			result.exponential.variance(), exp.expVar)
		benchLog.Infof("geometric:   mean level %.5f (want %.5f)",
			result.level.mean, exp.levelMean)
		benchLog.Infof("coupons:     mean draws to collect %d values %.1f "+
			"(want %.1f, %d rounds)", coupons, result.coupon.mean,
			exp.couponMean, result.coupon.n)
		benchLog.Infof("die:         counts %v, chi-squared %.3f (5 degrees "+
			"of freedom)", result.die, result.dieChiSquared())
	}

	if ctx.Err() != nil {
		benchLog.Warnf("Run interrupted; results are partial")
	}
	return nil
}

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// benchMain is the real main function for rngbench.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func benchMain() error {
	cfg, _, err := loadConfig(os.Args[1:])
	if err != nil {
		switch {
		case errors.Is(err, errShowVersion):
			appName := filepath.Base(os.Args[0])
			appName = strings.TrimSuffix(appName, filepath.Ext(appName))
			fmt.Println(version.Full(appName))
			return nil

		case errors.Is(err, errShowSubsystems):
			fmt.Println("Supported subsystems", supportedSubsystems())
			return nil
		}

		// go-flags already printed the usage or the parse error.
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				return nil
			}
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if !cfg.NoFileLog {
		if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFile)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}

	benchLog.Infof("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	// Write cpu profile if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			benchLog.Errorf("Unable to create cpu profile: %v", err)
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			benchLog.Errorf("Unable to start cpu profile: %v", err)
			return err
		}
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	// Write mem profile if requested.
	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			benchLog.Errorf("Unable to create mem profile: %v", err)
			return err
		}
		defer f.Close()
		defer pprof.WriteHeapProfile(f)
	}

	ctx := shutdownListener()
	if err := run(ctx, cfg); err != nil {
		benchLog.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	if err := benchMain(); err != nil {
		os.Exit(1)
	}
}
