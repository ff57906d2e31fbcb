package trialloc

import (
	"fmt"
	"time"

	"github.com/arloliu/trialloc/internal/logging"
	"github.com/arloliu/trialloc/internal/metrics"
	"github.com/arloliu/trialloc/strategy"
	"github.com/arloliu/trialloc/types"
)

// Engine allocates participants of a controlled trial to treatment groups.
//
// Engine is the main entry point of the Trialloc library. It holds the
// immutable trial universe (participant identifiers and group names) together
// with an injected random source, and exposes one method per randomization
// design:
//   - Simple, block, and permuted-block randomization
//   - Stratified randomization over caller-defined strata
//   - Cluster randomization over indivisible participant units
//   - Minimization (covariate-adaptive) greedy balancing
//
// Every strategy call builds a fresh Allocation and returns it to the caller;
// the engine keeps no allocation state between calls. The one piece of
// mutable engine state is the stored participant ORDER: designs that shuffle
// the whole list (simple randomization) reorder it in place, so the outcome
// of a later call depends on the calls made before it. Construct the engine
// with WithIsolatedParticipants when calls must not observe each other.
//
// Thread Safety:
//   - Engine is NOT safe for concurrent use. Strategy calls mutate the stored
//     participant order and draw from a single random source. Callers needing
//     concurrency must build one engine (and one seeded source) per goroutine.
//
// Reproducibility:
//   - Two engines built with the same participants, groups, and seed produce
//     bit-identical allocations for the same sequence of strategy calls.
//   - Without a seed the source is entropy-seeded and runs differ.
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type Allocator interface {
//	    Allocate(s types.AllocationStrategy) (types.Allocation, error)
//	}
type Engine struct {
	participants []string
	groups       []string

	// Injected dependencies
	rng     RandomSource
	logger  Logger
	metrics MetricsCollector

	// When set, strategy calls operate on copies and never mutate the
	// stored participant order or caller-supplied member slices.
	isolated bool
}

// NewEngine creates a new allocation engine for the given trial universe.
//
// The participant and group slices are copied, so later caller-side mutation
// of the inputs does not affect the engine. Group order is significant: it is
// the round-robin dealing order and the tie-break order for minimization.
//
// Returns a concrete *Engine struct following the "accept interfaces, return
// structs" principle. Consumers can define their own interfaces for testing.
//
// Parameters:
//   - participants: Ordered, non-empty list of unique participant identifiers
//   - groups: Ordered list of at least two unique group names
//   - opts: Optional configuration (seed, random source, logger, metrics, isolation)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if the universe or an option is invalid
//
// Example:
//
//	eng, err := trialloc.NewEngine(
//	    []string{"P1", "P2", "P3", "P4"},
//	    []string{"Treatment", "Control"},
//	    trialloc.WithSeed(42),
//	)
func NewEngine(participants []string, groups []string, opts ...Option) (*Engine, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	if err := requireUnique(participants, ErrDuplicateParticipant); err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}
	if len(groups) < 2 {
		return nil, ErrTooFewGroups
	}
	if err := requireUnique(groups, ErrDuplicateGroup); err != nil {
		return nil, err
	}

	// Apply options
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	source, err := options.randomSource()
	if err != nil {
		return nil, err
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	eng := &Engine{
		participants: append([]string(nil), participants...),
		groups:       append([]string(nil), groups...),
		rng:          source,
		logger:       loggerInstance,
		metrics:      metricsCollector,
		isolated:     options.isolated,
	}

	eng.logger.Debug("engine created",
		"participants", len(eng.participants),
		"groups", len(eng.groups),
		"isolated", eng.isolated,
	)

	return eng, nil
}

// Allocate runs an allocation strategy against the engine's universe.
//
// This is the generic entry point behind every convenience method; custom
// strategies implementing types.AllocationStrategy plug in here. The run is
// timed, recorded in metrics, and logged at debug level.
//
// Parameters:
//   - s: Allocation strategy to run
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: ErrStrategyRequired if s is nil, otherwise the strategy's error
func (e *Engine) Allocate(s AllocationStrategy) (types.Allocation, error) {
	if s == nil {
		return nil, ErrStrategyRequired
	}

	participants := e.participants
	if e.isolated {
		participants = append([]string(nil), e.participants...)
	}

	start := time.Now()
	alloc, err := s.Allocate(e.rng, participants, e.groups)
	elapsed := time.Since(start)

	if err != nil {
		e.metrics.RecordAllocationError(s.Name())
		e.logger.Error("allocation failed", "strategy", s.Name(), "error", err)

		return nil, fmt.Errorf("strategy %s: %w", s.Name(), err)
	}

	e.metrics.RecordAllocation(s.Name(), len(participants), elapsed.Seconds())
	e.logger.Debug("allocation complete",
		"strategy", s.Name(),
		"participants", len(participants),
		"assigned", alloc.Total(),
		"durationSeconds", elapsed.Seconds(),
	)

	return alloc, nil
}

// SimpleRandomization shuffles the full participant list uniformly at random
// and deals it round-robin into the groups in declared group order.
//
// Group sizes differ by at most 1; for N participants and G groups the first
// N mod G groups receive the extra participant. The shuffle reorders the
// engine's stored participant list in place (unless the engine was built with
// WithIsolatedParticipants), so subsequent calls start from the new order.
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: Strategy error (see strategy.Simple)
func (e *Engine) SimpleRandomization() (types.Allocation, error) {
	return e.Allocate(strategy.NewSimple())
}

// BlockRandomization cuts the stored participant order into consecutive
// blocks of blockSize, shuffles each block independently, and deals the
// concatenation round-robin into groups.
//
// The final block may be shorter than blockSize. The stored participant
// order is not mutated; blocks are shuffled on copies.
//
// Parameters:
//   - blockSize: Number of participants per block, at least 1
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: ErrInvalidBlockSize if blockSize < 1
func (e *Engine) BlockRandomization(blockSize int) (types.Allocation, error) {
	return e.Allocate(strategy.NewBlock(blockSize))
}

// StratifiedRandomization shuffles and deals each stratum independently,
// accumulating per-stratum round-robin balance into one allocation.
//
// Participants in the universe but in no stratum are silently excluded from
// the result; covering the universe is the caller's responsibility. The
// shuffle reorders the caller's stratum member slices in place unless the
// engine was built with WithIsolatedParticipants, in which case the strategy
// runs on a deep copy of the strata.
//
// Parameters:
//   - strata: Ordered strata whose member lists reference the universe
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: ErrUnknownParticipant if a stratum member is outside the universe
func (e *Engine) StratifiedRandomization(strata types.Strata) (types.Allocation, error) {
	if e.isolated {
		strata = strata.Clone()
	}

	return e.Allocate(strategy.NewStratified(strata))
}

// Minimization assigns participants one at a time, in stored order, to the
// group holding the fewest already-assigned participants with the same
// covariate value. Ties go to the earliest group in declared order.
//
// The greedy pass minimizes within-covariate imbalance at each step; it does
// not guarantee a global optimum. Covariate values are compared as opaque
// strings, so multi-dimensional covariates must be pre-combined by the
// caller into one composite value per participant.
//
// Parameters:
//   - covariates: Covariate value per participant; every participant needs an entry
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: ErrMissingCovariate if a participant has no covariate entry
func (e *Engine) Minimization(covariates types.Covariates) (types.Allocation, error) {
	return e.Allocate(strategy.NewMinimization(covariates))
}

// CovariateAdaptiveRandomization runs the identical greedy algorithm as
// Minimization under the name trial protocols more commonly use.
//
// Parameters:
//   - covariates: Covariate value per participant; every participant needs an entry
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: ErrMissingCovariate if a participant has no covariate entry
func (e *Engine) CovariateAdaptiveRandomization(covariates types.Covariates) (types.Allocation, error) {
	return e.Allocate(strategy.NewCovariateAdaptive(covariates))
}

// PermutedBlockRandomization partitions the full stored participant sequence
// once per size in blockSizes, shuffles every resulting block independently,
// and deals the concatenation of all blocks round-robin into groups.
//
// Each size contributes a complete partition of the universe, so the
// returned allocation assigns every participant exactly len(blockSizes)
// times. Callers wanting conventional single-coverage permuted blocks pass a
// single size, which is equivalent to BlockRandomization.
//
// Parameters:
//   - blockSizes: Block sizes, one full partition each; non-empty, every size >= 1
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: ErrNoBlockSizes or ErrInvalidBlockSize on bad sizes
func (e *Engine) PermutedBlockRandomization(blockSizes []int) (types.Allocation, error) {
	return e.Allocate(strategy.NewPermutedBlock(blockSizes))
}

// ClusterRandomization shuffles the cluster order, deals clusters round-robin
// into groups as indivisible units, and expands each cluster into its member
// participants.
//
// Group cluster counts differ by at most 1; participant-level sizes follow
// from the cluster sizes and are not separately balanced. Neither the stored
// participant order nor the caller's cluster slices are mutated.
//
// Parameters:
//   - clusters: Ordered clusters whose member lists reference the universe
//
// Returns:
//   - types.Allocation: Map from group name to ordered assigned participants
//   - error: ErrUnknownParticipant if a cluster member is outside the universe
func (e *Engine) ClusterRandomization(clusters types.Clusters) (types.Allocation, error) {
	return e.Allocate(strategy.NewCluster(clusters))
}

// Participants returns a copy of the stored participant order.
//
// The stored order is engine state: whole-list shuffles reorder it in place,
// and this accessor observes the current order without exposing the backing
// slice for mutation.
//
// Returns:
//   - []string: Copy of the participant identifiers in stored order
func (e *Engine) Participants() []string {
	return append([]string(nil), e.participants...)
}

// Groups returns a copy of the declared group order.
//
// Returns:
//   - []string: Copy of the group names in declared order
func (e *Engine) Groups() []string {
	return append([]string(nil), e.groups...)
}

// requireUnique reports the first duplicated value in ids wrapped around the
// given sentinel.
func requireUnique(ids []string, sentinel error) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%q: %w", id, sentinel)
		}
		seen[id] = struct{}{}
	}

	return nil
}
