package strategy

import (
	"fmt"
	"slices"

	"github.com/arloliu/trialloc/types"
)

// PermutedBlock implements permuted block randomization with one full
// partition of the participant sequence per configured block size.
type PermutedBlock struct {
	sizes []int
}

var _ types.AllocationStrategy = (*PermutedBlock)(nil)

// NewPermutedBlock creates a new permuted block randomization strategy.
//
// For every size in sizes, the full participant sequence is partitioned from
// the start into consecutive blocks of that size. All blocks from all sizes
// accumulate, each is shuffled on its own, and the concatenation is dealt
// round-robin into groups.
//
// Because each size contributes a complete partition of the universe, the
// allocation holds len(participants) * len(sizes) assignments: every
// participant appears exactly len(sizes) times. Textbook permuted block
// designs instead vary the size block-to-block over disjoint segments; this
// strategy keeps the multiplying form, and callers wanting single coverage
// pass a single size (equivalent to Block).
//
// Parameters:
//   - sizes: Block sizes, one full partition each (validated on Allocate)
//
// Returns:
//   - *PermutedBlock: Initialized permuted block randomization strategy
//
// Example:
//
//	alloc, err := eng.Allocate(strategy.NewPermutedBlock([]int{2, 4}))
func NewPermutedBlock(sizes []int) *PermutedBlock {
	return &PermutedBlock{sizes: slices.Clone(sizes)}
}

// Name returns the strategy identifier used in configuration and metrics.
func (pb *PermutedBlock) Name() string { return "permuted_block" }

// Allocate partitions the universe once per configured size, shuffles every
// block independently, and deals the concatenated blocks into groups.
//
// The passed participant slice is left in its original order; shuffling
// happens on per-block copies.
//
// Parameters:
//   - rng: Random source driving per-block shuffles
//   - participants: Participant universe (not mutated)
//   - groups: Ordered group names
//
// Returns:
//   - types.Allocation: Map from group to assigned participants, holding
//     len(participants) * len(sizes) assignments in total
//   - error: types.ErrNoBlockSizes if sizes is empty, types.ErrInvalidBlockSize
//     if any size < 1, types.ErrNoGroups if groups is empty
func (pb *PermutedBlock) Allocate(rng types.RandomSource, participants []string, groups []string) (types.Allocation, error) {
	if len(groups) == 0 {
		return nil, types.ErrNoGroups
	}
	if len(pb.sizes) == 0 {
		return nil, types.ErrNoBlockSizes
	}
	for _, size := range pb.sizes {
		if size < 1 {
			return nil, fmt.Errorf("block size %d: %w", size, types.ErrInvalidBlockSize)
		}
	}

	ordered := make([]string, 0, len(participants)*len(pb.sizes))
	for _, size := range pb.sizes {
		for start := 0; start < len(participants); start += size {
			end := min(start+size, len(participants))

			block := slices.Clone(participants[start:end])
			rng.Shuffle(len(block), func(i, j int) {
				block[i], block[j] = block[j], block[i]
			})

			ordered = append(ordered, block...)
		}
	}

	alloc := newAllocation(groups)
	dealRoundRobin(alloc, groups, ordered)

	return alloc, nil
}
