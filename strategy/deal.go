package strategy

import "github.com/arloliu/trialloc/types"

// newAllocation initializes an allocation with an empty, non-nil member list
// for every group, so callers always see every configured group as a key.
func newAllocation(groups []string) types.Allocation {
	alloc := make(types.Allocation, len(groups))
	for _, g := range groups {
		alloc[g] = []string{}
	}

	return alloc
}

// dealRoundRobin appends the ordered participants into the allocation in
// repeating cyclic group order, starting from the first group.
//
// Dealing a sequence of length L gives each group either floor(L/G) or
// ceil(L/G) members, with the first L mod G groups receiving the extra one.
func dealRoundRobin(alloc types.Allocation, groups []string, ordered []string) {
	for i, p := range ordered {
		g := groups[i%len(groups)]
		alloc[g] = append(alloc[g], p)
	}
}

// universeSet builds a membership set over the participant universe for
// validating stratum and cluster member references.
func universeSet(participants []string) map[string]struct{} {
	set := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		set[p] = struct{}{}
	}

	return set
}
