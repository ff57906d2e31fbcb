package strategy

import (
	"fmt"

	"github.com/arloliu/trialloc/types"
)

// identitySource keeps every shuffle a no-op so dealing order is fully
// predictable in tests.
type identitySource struct{}

func (identitySource) Shuffle(int, func(i, j int)) {}
func (identitySource) IntN(int) int                { return 0 }

// swapEndsSource swaps only the first and last element, giving tests a
// guaranteed, observable reordering.
type swapEndsSource struct{}

func (swapEndsSource) Shuffle(n int, swap func(i, j int)) {
	if n >= 2 {
		swap(0, n-1)
	}
}

func (swapEndsSource) IntN(int) int { return 0 }

// makeParticipants returns identifiers P1..Pn.
func makeParticipants(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("P%d", i+1)
	}

	return out
}

// flatten collects every assigned participant across all groups.
func flatten(alloc types.Allocation) []string {
	var out []string
	for _, members := range alloc {
		out = append(out, members...)
	}

	return out
}
