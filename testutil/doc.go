// Package testutil provides testing utilities for intbitset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating element sets and a
// slow, obviously-correct reference set to check results against.
//
// # Random Elements
//
//	rng := testutil.NewRNG(seed)
//	elems := rng.Elements(100, 10_000)    // uniform in [0, 10000)
//	runs := rng.RunElements(5, 64, 10_000) // dense runs
//
// # Reference Model
//
//	m := testutil.NewModel(false)
//	m.Add(3)
//	u := testutil.UnionModel(m, other)
package testutil
