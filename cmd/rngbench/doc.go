// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Rngbench exercises the dualrand generators with concurrent workers.

Each worker owns its generator.  Fast workers use jump-separated xoshiro256++
streams of a single state and secure workers use independently seeded ChaCha
keystreams.  Progress is logged every 10 seconds and a summary is logged once
all workers finish or the process is interrupted.

The following workloads are available:

	bench       measure raw throughput of 64-bit words
	montecarlo  estimate pi from points sampled in the unit square
	sample      compare sample moments of several distributions with theory

Usage:

	rngbench [OPTIONS]

Application Options:

	-V, --version        Display version information and exit
	-g, --generator=     Generator to exercise {fast, fast512, secure,
	                     chacha20} (default: fast) [$RNGBENCH_GENERATOR]
	-m, --mode=          Workload to run {bench, montecarlo, sample}
	                     (default: bench) [$RNGBENCH_MODE]
	-n, --count=         Number of values generated by each worker
	                     (default: 16777216) [$RNGBENCH_COUNT]
	-w, --workers=       Number of concurrent workers, each with its own
	                     generator (default: number of CPUs)
	                     [$RNGBENCH_WORKERS]
	    --seed=          Seed for a reproducible fast generator (0 seeds from
	                     the entropy source) [$RNGBENCH_SEED]
	    --entropy=       Entropy source used to seed the generators {os,
	                     userspace} (default: os) [$RNGBENCH_ENTROPY]
	    --logdir=        Directory to log output (default: logs)
	                     [$RNGBENCH_LOGDIR]
	    --nofilelogging  Disable file logging
	    --cpuprofile=    Write CPU profile to the specified file
	    --memprofile=    Write memory profile to the specified file
	-d, --debuglevel=    Logging level for all subsystems {trace, debug, info,
	                     warn, error, critical} -- You may also specify
	                     <subsystem>=<level>,<subsystem2>=<level>,... to set
	                     the log level for individual subsystems -- Use show
	                     to list available subsystems (default: info)
	                     [$RNGBENCH_DEBUGLEVEL]

Help Options:

	-h, --help           Show this help message
*/
package main
