package report

import (
	"fmt"

	"github.com/arloliu/trialloc/internal/logging"
	"github.com/arloliu/trialloc/internal/metrics"
	"github.com/arloliu/trialloc/types"
)

// Reporter summarizes and verifies allocations produced by the engine.
//
// A Reporter holds no state between calls; it exists to carry the logger and
// metrics collector its checks report through.
type Reporter struct {
	logger  types.Logger
	metrics types.ReporterMetrics
}

// Option configures a Reporter with optional dependencies.
type Option func(*Reporter)

// WithLogger sets the logger the randomization check line is written to.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for New
func WithLogger(logger types.Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics collector for group size and spread gauges.
//
// Parameters:
//   - m: ReporterMetrics implementation
//
// Returns:
//   - Option: Functional option for New
func WithMetrics(m types.ReporterMetrics) Option {
	return func(r *Reporter) {
		r.metrics = m
	}
}

// New creates a new balance reporter.
//
// Logger and metrics default to no-op implementations.
//
// Parameters:
//   - opts: Optional configuration (logger, metrics)
//
// Returns:
//   - *Reporter: Initialized reporter
//
// Example:
//
//	rep := report.New(report.WithLogger(logging.NewSlogDefault()))
//	sizes, err := rep.Check(alloc)
func New(opts ...Option) *Reporter {
	r := &Reporter{
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Check runs the randomization check: it derives per-group sizes from the
// allocation, emits one structured log line for observation, records gauge
// metrics, and returns the sizes for programmatic assertions.
//
// The log line iterates groups in sorted name order so output is stable for
// the map-backed allocation.
//
// Parameters:
//   - alloc: Allocation to summarize
//
// Returns:
//   - types.BalanceReport: Map from group name to assigned participant count
//   - error: types.ErrNilAllocation if alloc is nil
func (r *Reporter) Check(alloc types.Allocation) (types.BalanceReport, error) {
	if alloc == nil {
		return nil, types.ErrNilAllocation
	}

	sizes := alloc.Sizes()
	spread := sizes.Spread()

	fields := make([]any, 0, 2*len(sizes)+4)
	for _, group := range alloc.Groups() {
		fields = append(fields, group, sizes[group])
		r.metrics.RecordGroupSize(group, sizes[group])
	}
	fields = append(fields, "total", sizes.Total(), "spread", spread)
	r.metrics.RecordBalanceSpread(spread)

	r.logger.Info("randomization check", fields...)

	return sizes, nil
}

// VerifyCoverage checks the data integrity property for 1:1 designs: every
// universe member is assigned exactly once and nothing outside the universe
// appears.
//
// This is the caller-side check the engine itself never runs. It does not
// apply to permuted-block output (which assigns each participant once per
// block size) or to stratified output over strata that do not cover the
// universe.
//
// Parameters:
//   - alloc: Allocation under verification
//   - universe: Participant identifiers the allocation must cover
//
// Returns:
//   - error: types.ErrNilAllocation, types.ErrUnknownParticipant,
//     types.ErrDuplicateAssignment, or types.ErrIncompleteAllocation naming
//     the offending participant; nil when coverage is exact
func (r *Reporter) VerifyCoverage(alloc types.Allocation, universe []string) error {
	if alloc == nil {
		return types.ErrNilAllocation
	}

	known := make(map[string]struct{}, len(universe))
	for _, p := range universe {
		known[p] = struct{}{}
	}

	assigned := make(map[string]int, len(universe))
	for _, group := range alloc.Groups() {
		for _, p := range alloc[group] {
			if _, ok := known[p]; !ok {
				return fmt.Errorf("group %q member %q: %w", group, p, types.ErrUnknownParticipant)
			}
			assigned[p]++
			if assigned[p] > 1 {
				return fmt.Errorf("participant %q: %w", p, types.ErrDuplicateAssignment)
			}
		}
	}

	for _, p := range universe {
		if assigned[p] == 0 {
			return fmt.Errorf("participant %q: %w", p, types.ErrIncompleteAllocation)
		}
	}

	return nil
}

// CovariateBalance summarizes how covariate values spread across groups:
// for every group, the count of assigned members per covariate value.
//
// Minimization keeps each per-value row balanced within 1 across groups;
// this summary makes that property observable for any allocation.
//
// Parameters:
//   - alloc: Allocation to summarize
//   - covariates: Covariate value per participant; every assigned participant needs an entry
//
// Returns:
//   - types.CovariateBalance: Group to covariate value to member count
//   - error: types.ErrNilAllocation or types.ErrMissingCovariate
func (r *Reporter) CovariateBalance(alloc types.Allocation, covariates types.Covariates) (types.CovariateBalance, error) {
	if alloc == nil {
		return nil, types.ErrNilAllocation
	}

	balance := make(types.CovariateBalance, len(alloc))
	for group, members := range alloc {
		balance[group] = make(map[string]int)
		for _, p := range members {
			value, ok := covariates[p]
			if !ok {
				return nil, fmt.Errorf("participant %q: %w", p, types.ErrMissingCovariate)
			}
			balance[group][value]++
		}
	}

	return balance, nil
}
