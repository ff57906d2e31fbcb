// Package report provides the balance reporter for allocation results.
//
// The reporter is a thin consumer of the allocation engine's output. It
// computes per-group sizes (the randomization check), verifies that an
// allocation covers a participant universe exactly once, and summarizes
// covariate balance for minimization designs. All checks are single-pass
// computations over the in-memory allocation; nothing is persisted.
package report
