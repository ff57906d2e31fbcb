package strategy

import (
	"fmt"
	"slices"

	"github.com/arloliu/trialloc/types"
)

// Block implements block randomization: the participant sequence is cut into
// consecutive fixed-size blocks, each block is shuffled on its own, and the
// concatenation of the shuffled blocks is dealt round-robin into groups.
type Block struct {
	size int
}

var _ types.AllocationStrategy = (*Block)(nil)

// NewBlock creates a new block randomization strategy.
//
// Block randomization bounds imbalance locally: randomness never crosses a
// block boundary, so no long enrollment run can pile into one group. The
// final block may be shorter than the configured size.
//
// Parameters:
//   - size: Number of participants per block (validated on Allocate, must be >= 1)
//
// Returns:
//   - *Block: Initialized block randomization strategy
//
// Example:
//
//	alloc, err := eng.Allocate(strategy.NewBlock(4))
func NewBlock(size int) *Block {
	return &Block{size: size}
}

// Name returns the strategy identifier used in configuration and metrics.
func (b *Block) Name() string { return "block" }

// Allocate shuffles each consecutive block independently, concatenates the
// shuffled blocks in their original order, and deals the concatenation
// round-robin into groups.
//
// Unlike Simple, the passed participant slice is left in its original order;
// shuffling happens on per-block copies.
//
// Parameters:
//   - rng: Random source driving per-block shuffles
//   - participants: Participant universe (not mutated)
//   - groups: Ordered group names
//
// Returns:
//   - types.Allocation: Map from group to assigned participants
//   - error: types.ErrInvalidBlockSize if size < 1, types.ErrNoGroups if groups is empty
func (b *Block) Allocate(rng types.RandomSource, participants []string, groups []string) (types.Allocation, error) {
	if len(groups) == 0 {
		return nil, types.ErrNoGroups
	}
	if b.size < 1 {
		return nil, fmt.Errorf("block size %d: %w", b.size, types.ErrInvalidBlockSize)
	}

	ordered := make([]string, 0, len(participants))
	for start := 0; start < len(participants); start += b.size {
		end := min(start+b.size, len(participants))

		block := slices.Clone(participants[start:end])
		rng.Shuffle(len(block), func(i, j int) {
			block[i], block[j] = block[j], block[i]
		})

		ordered = append(ordered, block...)
	}

	alloc := newAllocation(groups)
	dealRoundRobin(alloc, groups, ordered)

	return alloc, nil
}
