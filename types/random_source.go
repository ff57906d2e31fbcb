package types

// RandomSource supplies every random draw a strategy makes.
//
// Sources are instance-scoped and injected at engine construction so that
// concurrent engines never interfere through shared global state. A source
// built from a fixed seed must produce an identical draw sequence on every
// run; seeding fixes the sequence only, not isolation between concurrent
// callers sharing one source.
//
// The interface matches the shape of math/rand/v2: Shuffle performs a
// Fisher-Yates permutation through the swap callback, IntN draws a uniform
// integer. Implementations are not required to be safe for concurrent use;
// the engine itself is documented as single-threaded.
type RandomSource interface {
	// Shuffle pseudo-randomizes the order of n elements by calling swap for
	// each exchanged pair. It panics if n < 0, mirroring math/rand/v2.
	Shuffle(n int, swap func(i, j int))

	// IntN returns a uniform pseudo-random integer in [0, n).
	// It panics if n <= 0, mirroring math/rand/v2.
	IntN(n int) int
}
