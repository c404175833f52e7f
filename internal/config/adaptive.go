package config

import "runtime"

// Worker count resolution chain (highest priority first):
//   1. CLI flag (--bench-workers)
//   2. Environment variable (CALCKIT_BENCH_WORKERS)
//   3. Adaptive hardware estimation (this file)

// ApplyAdaptiveDefaults fills in configuration values that depend on the
// host hardware when they are still at their zero default, preserving any
// user-specified overrides.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.BenchWorkers == 0 {
		cfg.BenchWorkers = EstimateBenchWorkers()
	}
	return cfg
}

// EstimateBenchWorkers provides a heuristic worker count for concurrent
// benchmark probes without running calibration benchmarks. Timing probes
// contend for memory bandwidth, so the count is capped below the core count
// on large machines.
func EstimateBenchWorkers() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 8:
		return numCPU - 1
	default:
		return 8
	}
}
