package strategy

import (
	"fmt"

	"github.com/arloliu/trialloc/types"
)

// Stratified implements stratified randomization: every stratum is shuffled
// and dealt into groups on its own, so round-robin balance holds within each
// stratum independently.
type Stratified struct {
	strata types.Strata
}

var _ types.AllocationStrategy = (*Stratified)(nil)

// NewStratified creates a new stratified randomization strategy.
//
// Strata are processed in declared order, and each stratum's members land in
// the allocation before the next stratum's. Participants in the universe but
// in no stratum are excluded from the result; covering the universe is the
// caller's responsibility.
//
// Parameters:
//   - strata: Ordered strata whose member lists reference the participant universe
//
// Returns:
//   - *Stratified: Initialized stratified randomization strategy
//
// Example:
//
//	strata := types.Strata{
//	    {Name: "young", Members: []string{"P1", "P2", "P3", "P4"}},
//	    {Name: "old", Members: []string{"P5", "P6", "P7", "P8"}},
//	}
//	alloc, err := eng.Allocate(strategy.NewStratified(strata))
func NewStratified(strata types.Strata) *Stratified {
	return &Stratified{strata: strata}
}

// Name returns the strategy identifier used in configuration and metrics.
func (s *Stratified) Name() string { return "stratified" }

// Allocate shuffles each stratum's member list in place and deals it
// round-robin into groups, stratum by stratum.
//
// The shuffle reorders the caller's stratum member slices as a side effect,
// mirroring how Simple reorders the participant list. Membership is validated
// against the universe before any shuffling, so a lookup failure leaves the
// strata untouched.
//
// Parameters:
//   - rng: Random source driving per-stratum shuffles
//   - participants: Participant universe (consulted for membership only, not mutated)
//   - groups: Ordered group names
//
// Returns:
//   - types.Allocation: Map from group to assigned participants
//   - error: types.ErrNoGroups if groups is empty, types.ErrUnknownParticipant
//     if a stratum references an identifier outside the universe
func (s *Stratified) Allocate(rng types.RandomSource, participants []string, groups []string) (types.Allocation, error) {
	if len(groups) == 0 {
		return nil, types.ErrNoGroups
	}

	universe := universeSet(participants)
	for _, stratum := range s.strata {
		for _, member := range stratum.Members {
			if _, ok := universe[member]; !ok {
				return nil, fmt.Errorf("stratum %q member %q: %w", stratum.Name, member, types.ErrUnknownParticipant)
			}
		}
	}

	alloc := newAllocation(groups)

	for _, stratum := range s.strata {
		rng.Shuffle(len(stratum.Members), func(i, j int) {
			stratum.Members[i], stratum.Members[j] = stratum.Members[j], stratum.Members[i]
		})

		dealRoundRobin(alloc, groups, stratum.Members)
	}

	return alloc, nil
}
