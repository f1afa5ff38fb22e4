// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultGenerator  = generatorFast
	defaultMode       = modeBench
	defaultCount      = 1 << 24
	defaultLogLevel   = "info"
	defaultLogDirname = "logs"
	defaultLogFile    = "rngbench.log"
	defaultEntropy    = entropyOS
)

// Supported entropy sources.
const (
	entropyOS        = "os"
	entropyUserspace = "userspace"
)

// Supported generators.
const (
	generatorFast     = "fast"
	generatorFast512  = "fast512"
	generatorSecure   = "secure"
	generatorChaCha20 = "chacha20"
)

// Supported modes.
const (
	modeBench      = "bench"
	modeMonteCarlo = "montecarlo"
	modeSample     = "sample"
)

// config defines the configuration options for rngbench.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	Generator   string `short:"g" long:"generator" env:"RNGBENCH_GENERATOR" description:"Generator to exercise {fast, fast512, secure, chacha20}"`
	Mode        string `short:"m" long:"mode" env:"RNGBENCH_MODE" description:"Workload to run {bench, montecarlo, sample}"`
	Count       uint64 `short:"n" long:"count" env:"RNGBENCH_COUNT" description:"Number of values generated by each worker"`
	Workers     int    `short:"w" long:"workers" env:"RNGBENCH_WORKERS" description:"Number of concurrent workers, each with its own generator (default: number of CPUs)"`
	Seed        uint64 `long:"seed" env:"RNGBENCH_SEED" description:"Seed for a reproducible fast generator (0 seeds from the entropy source)"`
	Entropy     string `long:"entropy" env:"RNGBENCH_ENTROPY" description:"Entropy source used to seed the generators {os, userspace}"`
	LogDir      string `long:"logdir" env:"RNGBENCH_LOGDIR" description:"Directory to log output"`
	NoFileLog   bool   `long:"nofilelogging" description:"Disable file logging"`
	CPUProfile  string `long:"cpuprofile" description:"Write CPU profile to the specified file"`
	MemProfile  string `long:"memprofile" description:"Write memory profile to the specified file"`
	DebugLevel  string `short:"d" long:"debuglevel" env:"RNGBENCH_DEBUGLEVEL" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := slog.LevelFromString(logLevel)
	return ok
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {
	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		if !validLogLevel(debugLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}

		// Change the logging level for all subsystems.
		setLogLevels(debugLevel)
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			str := "the specified debug level contains an invalid " +
				"subsystem/level pair [%v]"
			return fmt.Errorf(str, logLevelPair)
		}

		// Extract the specified subsystem and log level.
		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		// Validate subsystem.
		if _, exists := subsystemLoggers[subsysID]; !exists {
			str := "the specified subsystem [%v] is invalid -- " +
				"supported subsystems %v"
			return fmt.Errorf(str, subsysID, supportedSubsystems())
		}

		// Validate log level.
		if !validLogLevel(logLevel) {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	return nil
}

// errShowSubsystems is returned by loadConfig when the caller asked for the
// list of logging subsystems.
var errShowSubsystems = errors.New("show subsystems")

// errShowVersion is returned by loadConfig when the caller asked for the
// version.
var errShowVersion = errors.New("show version")

// loadConfig initializes and parses the config using command line options and
// environment variables.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Override with any environment variables named by the env tags
//  3. Override with any specified command line options
//
// The remaining positional arguments are returned.  The returned error wraps
// errShowVersion or errShowSubsystems when the respective information was
// requested and flags.ErrHelp when usage was shown.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Generator:  defaultGenerator,
		Mode:       defaultMode,
		Count:      defaultCount,
		Workers:    runtime.NumCPU(),
		Entropy:    defaultEntropy,
		LogDir:     defaultLogDirname,
		DebugLevel: defaultLogLevel,
	}

	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	if cfg.ShowVersion {
		return &cfg, nil, errShowVersion
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return &cfg, nil, errShowSubsystems
	}

	switch cfg.Generator {
	case generatorFast, generatorFast512, generatorSecure, generatorChaCha20:
	default:
		err := fmt.Errorf("unknown generator %q -- supported generators "+
			"{%s, %s, %s, %s}", cfg.Generator, generatorFast,
			generatorFast512, generatorSecure, generatorChaCha20)
		return nil, nil, fmt.Errorf("%w\n%s", err, usageMessage)
	}

	switch cfg.Mode {
	case modeBench, modeMonteCarlo, modeSample:
	default:
		err := fmt.Errorf("unknown mode %q -- supported modes {%s, %s, %s}",
			cfg.Mode, modeBench, modeMonteCarlo, modeSample)
		return nil, nil, fmt.Errorf("%w\n%s", err, usageMessage)
	}

	switch cfg.Entropy {
	case entropyOS, entropyUserspace:
	default:
		err := fmt.Errorf("unknown entropy source %q -- supported sources "+
			"{%s, %s}", cfg.Entropy, entropyOS, entropyUserspace)
		return nil, nil, fmt.Errorf("%w\n%s", err, usageMessage)
	}

	if cfg.Count == 0 {
		err := errors.New("the count must be greater than zero")
		return nil, nil, fmt.Errorf("%w\n%s", err, usageMessage)
	}
	if cfg.Workers < 1 {
		err := fmt.Errorf("the number of workers must be at least 1 -- "+
			"parsed [%d]", cfg.Workers)
		return nil, nil, fmt.Errorf("%w\n%s", err, usageMessage)
	}
	if cfg.Seed != 0 && cfg.Generator != generatorFast &&
		cfg.Generator != generatorFast512 {

		err := fmt.Errorf("--seed only applies to the %s and %s generators",
			generatorFast, generatorFast512)
		return nil, nil, fmt.Errorf("%w\n%s", err, usageMessage)
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, fmt.Errorf("%w\n%s", err, usageMessage)
	}

	return &cfg, remainingArgs, nil
}
