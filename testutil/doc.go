// Package testutil provides testing utilities for xorgo.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded, thread-safe random number generator for producing
// deterministic point sets, queries and random subset samples.
//
//	rng := testutil.NewRNG(seed)
//	points := rng.Uint64s(2000)
//	subset := rng.Choose(points, 10)
package testutil
