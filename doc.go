// Package trialloc provides a Go library for allocating participants of a
// controlled trial to treatment groups using standard randomization designs.
//
// Trialloc implements the allocation engine of a randomized controlled trial:
// given a fixed universe of participants and groups, it produces a group
// assignment using simple, block, permuted-block, stratified, or cluster
// randomization, or greedy covariate minimization. A balance reporter
// summarizes and verifies the resulting allocation. The library does not
// enroll participants, persist trial data, or analyze outcomes.
//
// # Quick Start
//
// Basic usage with a fixed seed:
//
//	import "github.com/arloliu/trialloc"
//
//	eng, err := trialloc.NewEngine(
//	    []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7", "P8"},
//	    []string{"Treatment", "Control"},
//	    trialloc.WithSeed(42),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	alloc, err := eng.SimpleRandomization()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rep, _ := report.New().Check(alloc)
//	fmt.Println(rep) // map[Control:4 Treatment:4]
//
// # Key Features
//
//   - Six Randomization Designs: simple, block, permuted-block, stratified,
//     cluster, and minimization (covariate-adaptive) allocation
//   - Reproducible Draws: an instance-scoped, seedable random source makes
//     seeded allocations bit-identical across runs and engines
//   - Balance Guarantees: round-robin dealing bounds group size spread to 1
//     at the granularity each design balances
//   - Coverage Verification: the report package checks that an allocation
//     covers the universe exactly once with no duplicates
//   - Pluggable Strategies: custom designs implement types.AllocationStrategy
//
// # Architecture
//
// The engine holds the immutable trial universe and an injected random
// source; each strategy call is a single-pass computation returning a fresh
// Allocation. The only engine state between calls is the stored participant
// ORDER, which whole-list shuffles mutate in place; the
// WithIsolatedParticipants option disables that coupling.
//
// # Advanced Usage
//
// Custom strategy with options:
//
//	import (
//	    "github.com/arloliu/trialloc"
//	    "github.com/arloliu/trialloc/strategy"
//	)
//
//	eng, err := trialloc.NewEngine(participants, groups,
//	    trialloc.WithSeedKey("PROTO-2026-017"),
//	    trialloc.WithLogger(logging.NewSlogDefault()),
//	    trialloc.WithIsolatedParticipants(),
//	)
//
//	alloc, err := eng.Allocate(strategy.NewBlock(4))
//
// See the examples/ directory for complete working examples.
package trialloc
