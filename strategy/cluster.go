package strategy

import (
	"fmt"

	"github.com/arloliu/trialloc/types"
)

// Cluster implements cluster randomization: whole clusters are dealt into
// groups as indivisible units and then expanded to their member participants.
type Cluster struct {
	clusters types.Clusters
}

var _ types.AllocationStrategy = (*Cluster)(nil)

// NewCluster creates a new cluster randomization strategy.
//
// The cluster order is shuffled and dealt round-robin into groups, so group
// cluster counts differ by at most 1. Participant-level sizes follow from the
// cluster sizes and are not separately balanced. Participants in the universe
// but in no cluster are excluded from the result.
//
// Parameters:
//   - clusters: Ordered clusters whose member lists reference the participant universe
//
// Returns:
//   - *Cluster: Initialized cluster randomization strategy
//
// Example:
//
//	clusters := types.Clusters{
//	    {Name: "clinic-a", Members: []string{"P1", "P2"}},
//	    {Name: "clinic-b", Members: []string{"P3", "P4"}},
//	}
//	alloc, err := eng.Allocate(strategy.NewCluster(clusters))
func NewCluster(clusters types.Clusters) *Cluster {
	return &Cluster{clusters: clusters}
}

// Name returns the strategy identifier used in configuration and metrics.
func (c *Cluster) Name() string { return "cluster" }

// Allocate shuffles the cluster order, deals clusters round-robin into
// groups, and expands each assigned cluster into its members.
//
// Each cluster's internal member order is preserved, and clusters assigned to
// the same group appear in assignment order. The shuffle works on a private
// index slice, so neither the caller's cluster order nor any member list is
// mutated.
//
// Parameters:
//   - rng: Random source driving the cluster-order shuffle
//   - participants: Participant universe (consulted for membership only, not mutated)
//   - groups: Ordered group names
//
// Returns:
//   - types.Allocation: Map from group to assigned participants
//   - error: types.ErrNoGroups if groups is empty, types.ErrUnknownParticipant
//     if a cluster references an identifier outside the universe
func (c *Cluster) Allocate(rng types.RandomSource, participants []string, groups []string) (types.Allocation, error) {
	if len(groups) == 0 {
		return nil, types.ErrNoGroups
	}

	universe := universeSet(participants)
	for _, cluster := range c.clusters {
		for _, member := range cluster.Members {
			if _, ok := universe[member]; !ok {
				return nil, fmt.Errorf("cluster %q member %q: %w", cluster.Name, member, types.ErrUnknownParticipant)
			}
		}
	}

	order := make([]int, len(c.clusters))
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	alloc := newAllocation(groups)
	for i, idx := range order {
		g := groups[i%len(groups)]
		alloc[g] = append(alloc[g], c.clusters[idx].Members...)
	}

	return alloc, nil
}
