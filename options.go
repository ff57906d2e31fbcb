package trialloc

import "github.com/arloliu/trialloc/internal/rng"

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	seed      *uint64
	source    RandomSource
	sourceSet bool
	logger    Logger
	metrics   MetricsCollector
	isolated  bool
}

// randomSource resolves the configured random source.
//
// Precedence: WithRandomSource wins over WithSeed/WithSeedKey; among the seed
// options, the last one applied wins; with nothing configured the source is
// entropy-seeded.
func (o *engineOptions) randomSource() (RandomSource, error) {
	if o.sourceSet {
		if o.source == nil {
			return nil, ErrRandomSourceRequired
		}

		return o.source, nil
	}
	if o.seed != nil {
		return rng.New(*o.seed), nil
	}

	return rng.NewRandom(), nil
}

// WithSeed fixes the random seed, making every draw deterministic.
//
// Two engines built with the same universe and seed produce bit-identical
// allocations for the same sequence of strategy calls. Without WithSeed (or
// WithSeedKey / WithRandomSource) the engine is entropy-seeded and runs
// differ.
//
// Parameters:
//   - seed: Fixed seed value
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	eng, err := trialloc.NewEngine(participants, groups, trialloc.WithSeed(42))
func WithSeed(seed uint64) Option {
	return func(o *engineOptions) {
		o.seed = &seed
	}
}

// WithSeedKey derives the seed from a stable string key using XXH3.
//
// Trial protocols often pin reproducibility to a protocol identifier rather
// than a raw number; WithSeedKey turns such an identifier into a fixed seed.
// When both WithSeed and WithSeedKey are applied, the last option wins.
//
// Parameters:
//   - key: Stable identifier (e.g., "PROTO-2026-017")
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	eng, err := trialloc.NewEngine(participants, groups, trialloc.WithSeedKey("PROTO-2026-017"))
func WithSeedKey(key string) Option {
	return func(o *engineOptions) {
		seed := rng.KeySeed(key)
		o.seed = &seed
	}
}

// WithRandomSource injects a custom random source, overriding any seed option.
//
// The source is instance-scoped: every draw the engine makes goes through it,
// so injecting a deterministic source makes the engine deterministic and
// injecting a shared source couples the engines sharing it. A nil source
// fails engine construction with ErrRandomSourceRequired.
//
// Parameters:
//   - source: RandomSource implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	src := rng.New(42)
//	eng, err := trialloc.NewEngine(participants, groups, trialloc.WithRandomSource(src))
func WithRandomSource(source RandomSource) Option {
	return func(o *engineOptions) {
		o.source = source
		o.sourceSet = true
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog-style loggers)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	eng, err := trialloc.NewEngine(participants, groups, trialloc.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "trialloc")
//	eng, err := trialloc.NewEngine(participants, groups, trialloc.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithIsolatedParticipants makes every strategy call pure.
//
// By default, whole-list shuffles reorder the engine's stored participant
// list in place and stratified randomization reorders the caller's stratum
// member slices, so later calls depend on earlier ones. With this option
// every strategy call operates on fresh copies: the stored order and all
// caller-supplied slices stay untouched, and repeated calls with the same
// seeded source become independent of call history.
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	eng, err := trialloc.NewEngine(participants, groups,
//	    trialloc.WithSeed(42),
//	    trialloc.WithIsolatedParticipants(),
//	)
func WithIsolatedParticipants() Option {
	return func(o *engineOptions) {
		o.isolated = true
	}
}
