package types

// AllocationStrategy computes a group assignment for a set of participants.
//
// Strategies implement the randomization designs used in controlled trials:
//   - Simple: uniform shuffle followed by round-robin dealing
//   - Block: per-block shuffling to bound imbalance locally
//   - Stratified: independent round-robin dealing per stratum
//   - PermutedBlock: repeated full partitions with varying block sizes
//   - Cluster: indivisible participant groups dealt round-robin
//   - Minimization: greedy covariate-imbalance minimization
//   - Custom: user-defined algorithms
//
// The engine invokes Allocate once per strategy call and retains nothing
// between calls.
//
// Strategy implementations should:
//   - Draw all randomness from the supplied RandomSource (never a global one)
//   - Validate their own parameters and report sentinel errors
//   - Either fully succeed with an internally consistent Allocation or fail
//     before producing one (no partial results)
//
// Mutation contract: a strategy may reorder the participants slice it is
// given in place when its design calls for a whole-list shuffle. Callers that
// need the input preserved must pass a copy.
type AllocationStrategy interface {
	// Name returns the stable identifier of the strategy (e.g., "simple",
	// "block"), used in logs, metrics labels, and configuration files.
	Name() string

	// Allocate computes the group assignment.
	//
	// Parameters:
	//   - rng: Random source for every draw the strategy makes
	//   - participants: Ordered participant universe (may be reordered in place)
	//   - groups: Ordered group names; dealing follows this order
	//
	// Returns:
	//   - Allocation: Map from group name to ordered assigned participants
	//   - error: Configuration or lookup error (e.g., ErrNoGroups,
	//     ErrMissingCovariate); never a partial allocation
	Allocate(rng RandomSource, participants []string, groups []string) (Allocation, error)
}
