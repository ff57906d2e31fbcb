package strategy

import (
	"fmt"

	"github.com/arloliu/trialloc/types"
)

// Minimization implements greedy covariate balancing: participants are
// assigned one at a time to the group holding the fewest already-assigned
// participants with the same covariate value.
type Minimization struct {
	name       string
	covariates types.Covariates
}

var _ types.AllocationStrategy = (*Minimization)(nil)

// NewMinimization creates a new minimization strategy.
//
// Participants are processed in the order given to Allocate, without
// shuffling; randomness plays no role. For each participant, the group with
// the minimum imbalance score wins, where the score counts already-assigned
// members of that group sharing the participant's covariate value. Ties go to
// the earliest group in declared order (stable argmin).
//
// Covariate values are compared as opaque strings. Multi-dimensional
// covariates must be pre-combined into one composite value, e.g. "male|18-30".
//
// Parameters:
//   - covariates: Covariate value per participant; every participant needs an entry
//
// Returns:
//   - *Minimization: Initialized minimization strategy
//
// Example:
//
//	covariates := types.Covariates{"P1": "A", "P2": "B", "P3": "A", "P4": "B"}
//	alloc, err := eng.Allocate(strategy.NewMinimization(covariates))
func NewMinimization(covariates types.Covariates) *Minimization {
	return &Minimization{name: "minimization", covariates: covariates}
}

// NewCovariateAdaptive creates a covariate-adaptive randomization strategy.
//
// Covariate-adaptive randomization and minimization run the identical greedy
// algorithm; minimization is the canonical term and this constructor exists
// so configuration and reports can carry the name a protocol uses.
//
// Parameters:
//   - covariates: Covariate value per participant; every participant needs an entry
//
// Returns:
//   - *Minimization: Initialized strategy reporting itself as "covariate_adaptive"
func NewCovariateAdaptive(covariates types.Covariates) *Minimization {
	return &Minimization{name: "covariate_adaptive", covariates: covariates}
}

// Name returns the strategy identifier used in configuration and metrics.
func (m *Minimization) Name() string { return m.name }

// Allocate assigns each participant to the group minimizing within-covariate
// imbalance at that step.
//
// The participant order is preserved, not shuffled, so the outcome depends
// only on the covariate map and the declared group order. The greedy pass
// minimizes imbalance per step and does not guarantee a global optimum.
//
// Parameters:
//   - rng: Unused; present to satisfy the strategy contract
//   - participants: Participant universe, processed in order (not mutated)
//   - groups: Ordered group names; earlier groups win ties
//
// Returns:
//   - types.Allocation: Map from group to assigned participants
//   - error: types.ErrNoGroups if groups is empty, types.ErrMissingCovariate
//     if a participant has no covariate entry
func (m *Minimization) Allocate(_ types.RandomSource, participants []string, groups []string) (types.Allocation, error) {
	if len(groups) == 0 {
		return nil, types.ErrNoGroups
	}

	for _, p := range participants {
		if _, ok := m.covariates[p]; !ok {
			return nil, fmt.Errorf("participant %q: %w", p, types.ErrMissingCovariate)
		}
	}

	alloc := newAllocation(groups)

	// counts[group][value] tracks assigned covariate values per group, so each
	// step scores in O(G) instead of rescanning every assignment.
	counts := make(map[string]map[string]int, len(groups))
	for _, g := range groups {
		counts[g] = make(map[string]int)
	}

	for _, p := range participants {
		value := m.covariates[p]

		best := groups[0]
		bestScore := counts[best][value]
		for _, g := range groups[1:] {
			if score := counts[g][value]; score < bestScore {
				best, bestScore = g, score
			}
		}

		alloc[best] = append(alloc[best], p)
		counts[best][value]++
	}

	return alloc, nil
}
