package types

import "slices"

// Allocation is the result of a randomization strategy: a mapping from group
// name to the ordered sequence of participants assigned to that group.
//
// For every strategy except permuted-block randomization, the multiset union
// of all member sequences equals the strategy's input participants exactly
// once each (no loss, no duplication). Permuted-block randomization assigns
// each participant once per configured block size; cluster randomization
// balances at the cluster level and inherits participant counts from cluster
// sizes. Member order within a group is meaningful and preserved.
type Allocation map[string][]string

// Total returns the number of assigned participants across all groups,
// counting repeats.
func (a Allocation) Total() int {
	total := 0
	for _, members := range a {
		total += len(members)
	}

	return total
}

// Members returns a copy of the ordered member sequence for the given group.
//
// Returns nil when the group is not present in the allocation.
func (a Allocation) Members(group string) []string {
	members, ok := a[group]
	if !ok {
		return nil
	}

	return slices.Clone(members)
}

// Participants returns all assigned participants flattened into a single
// slice, iterating groups in sorted name order so the result is stable.
// Repeats are kept, so the result is a true multiset view of the allocation.
func (a Allocation) Participants() []string {
	out := make([]string, 0, a.Total())
	for _, group := range a.Groups() {
		out = append(out, a[group]...)
	}

	return out
}

// Groups returns the group names present in the allocation in sorted order.
//
// Sorting gives map-backed allocations a stable iteration order for display
// and serialization; the dealing order used during allocation is the engine's
// declared group order, not this one.
func (a Allocation) Groups() []string {
	groups := make([]string, 0, len(a))
	for group := range a {
		groups = append(groups, group)
	}
	slices.Sort(groups)

	return groups
}

// Clone returns a deep copy of the allocation.
func (a Allocation) Clone() Allocation {
	if a == nil {
		return nil
	}

	out := make(Allocation, len(a))
	for group, members := range a {
		out[group] = slices.Clone(members)
	}

	return out
}

// Sizes derives the balance report: group name to member count.
func (a Allocation) Sizes() BalanceReport {
	report := make(BalanceReport, len(a))
	for group, members := range a {
		report[group] = len(members)
	}

	return report
}

// BalanceReport maps each group name to its assigned participant count.
type BalanceReport map[string]int

// Total returns the sum of all group sizes.
func (r BalanceReport) Total() int {
	total := 0
	for _, size := range r {
		total += size
	}

	return total
}

// Spread returns the difference between the largest and smallest group size.
//
// Round-robin based strategies guarantee a spread of at most 1 at the
// granularity they balance. Returns 0 for an empty report.
func (r BalanceReport) Spread() int {
	if len(r) == 0 {
		return 0
	}

	first := true
	minSize, maxSize := 0, 0
	for _, size := range r {
		if first {
			minSize, maxSize = size, size
			first = false

			continue
		}
		if size < minSize {
			minSize = size
		}
		if size > maxSize {
			maxSize = size
		}
	}

	return maxSize - minSize
}

// CovariateBalance maps group name to covariate value to the count of group
// members carrying that value. Produced by the reporter's covariate check.
type CovariateBalance map[string]map[string]int
