package strategy

import (
	"github.com/arloliu/trialloc/types"
)

// Simple implements simple randomization: one uniform shuffle of the full
// participant list followed by round-robin dealing into groups.
type Simple struct{}

var _ types.AllocationStrategy = (*Simple)(nil)

// NewSimple creates a new simple randomization strategy.
//
// The strategy shuffles the whole participant list uniformly at random and
// deals it round-robin into the groups, so group sizes differ by at most 1.
//
// Returns:
//   - *Simple: Initialized simple randomization strategy
//
// Example:
//
//	eng := trialloc.NewEngine(participants, groups, trialloc.WithSeed(42))
//	alloc, err := eng.Allocate(strategy.NewSimple())
func NewSimple() *Simple {
	return &Simple{}
}

// Name returns the strategy identifier used in configuration and metrics.
func (s *Simple) Name() string { return "simple" }

// Allocate shuffles participants in place and deals them into groups.
//
// The passed participant slice is reordered as a side effect; engines expose
// this deliberately so repeated calls keep re-randomizing the same storage.
// Callers needing isolation pass a copy.
//
// Parameters:
//   - rng: Random source driving the shuffle
//   - participants: Participant universe (reordered in place)
//   - groups: Ordered group names
//
// Returns:
//   - types.Allocation: Map from group to assigned participants
//   - error: types.ErrNoGroups if groups is empty
func (s *Simple) Allocate(rng types.RandomSource, participants []string, groups []string) (types.Allocation, error) {
	if len(groups) == 0 {
		return nil, types.ErrNoGroups
	}

	rng.Shuffle(len(participants), func(i, j int) {
		participants[i], participants[j] = participants[j], participants[i]
	})

	alloc := newAllocation(groups)
	dealRoundRobin(alloc, groups, participants)

	return alloc, nil
}
