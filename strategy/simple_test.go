package strategy

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/trialloc/internal/rng"
	"github.com/arloliu/trialloc/types"
)

func TestSimple_Allocate(t *testing.T) {
	t.Run("splits eight participants into two groups of four", func(t *testing.T) {
		s := NewSimple()
		participants := makeParticipants(8)
		groups := []string{"Treatment", "Control"}

		alloc, err := s.Allocate(rng.New(42), participants, groups)

		require.NoError(t, err)
		require.Len(t, alloc, 2)
		require.Len(t, alloc["Treatment"], 4)
		require.Len(t, alloc["Control"], 4)
		require.ElementsMatch(t, makeParticipants(8), flatten(alloc))
	})

	t.Run("first groups receive the extra participant on uneven counts", func(t *testing.T) {
		s := NewSimple()
		participants := makeParticipants(7)
		groups := []string{"A", "B", "C"}

		alloc, err := s.Allocate(rng.New(1), participants, groups)

		require.NoError(t, err)
		require.Len(t, alloc["A"], 3)
		require.Len(t, alloc["B"], 2)
		require.Len(t, alloc["C"], 2)
	})

	t.Run("same seed reproduces the allocation", func(t *testing.T) {
		s := NewSimple()
		groups := []string{"Treatment", "Control"}

		first, err := s.Allocate(rng.New(42), makeParticipants(8), groups)
		require.NoError(t, err)

		second, err := s.Allocate(rng.New(42), makeParticipants(8), groups)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("reorders the participant slice in place", func(t *testing.T) {
		s := NewSimple()
		participants := makeParticipants(4)
		groups := []string{"A", "B"}

		alloc, err := s.Allocate(swapEndsSource{}, participants, groups)

		require.NoError(t, err)
		require.Equal(t, []string{"P4", "P2", "P3", "P1"}, participants)
		require.Equal(t, []string{"P4", "P3"}, alloc["A"])
		require.Equal(t, []string{"P2", "P1"}, alloc["B"])
	})

	t.Run("deals the shuffled order round-robin in group order", func(t *testing.T) {
		s := NewSimple()
		participants := makeParticipants(5)
		groups := []string{"A", "B"}

		alloc, err := s.Allocate(identitySource{}, participants, groups)

		require.NoError(t, err)
		require.Equal(t, []string{"P1", "P3", "P5"}, alloc["A"])
		require.Equal(t, []string{"P2", "P4"}, alloc["B"])
	})

	t.Run("returns error when groups is empty", func(t *testing.T) {
		s := NewSimple()

		_, err := s.Allocate(rng.New(42), makeParticipants(4), nil)

		require.ErrorIs(t, err, types.ErrNoGroups)
	})

	t.Run("handles empty participant list", func(t *testing.T) {
		s := NewSimple()
		groups := []string{"A", "B"}

		alloc, err := s.Allocate(rng.New(42), nil, groups)

		require.NoError(t, err)
		require.Empty(t, alloc["A"])
		require.Empty(t, alloc["B"])
	})
}

func TestSimple_Name(t *testing.T) {
	require.Equal(t, "simple", NewSimple().Name())
}

func TestSimple_BalanceBound(t *testing.T) {
	groups := []string{"A", "B", "C"}

	// Spread must stay within 1 regardless of seed or count.
	for seed := uint64(0); seed < 20; seed++ {
		for _, n := range []int{1, 2, 5, 9, 10, 31} {
			alloc, err := NewSimple().Allocate(rng.New(seed), makeParticipants(n), groups)
			require.NoError(t, err)
			require.LessOrEqual(t, alloc.Sizes().Spread(), 1, "seed %d, %d participants", seed, n)
			require.Len(t, flatten(alloc), n)
		}
	}
}

func TestSimple_ShufflesUniformly(t *testing.T) {
	// A fixed participant should not land in the same slot every time across
	// differently seeded runs.
	positions := make(map[string]struct{})
	for seed := uint64(0); seed < 50; seed++ {
		participants := makeParticipants(8)
		_, err := NewSimple().Allocate(rng.New(seed), participants, []string{"A", "B"})
		require.NoError(t, err)

		positions[participants[0]] = struct{}{}
	}

	require.Greater(t, len(positions), 1, "shuffle should move the head participant across seeds")
}

func TestSimple_AllocateIsFreshPerCall(t *testing.T) {
	s := NewSimple()
	participants := makeParticipants(6)
	groups := []string{"A", "B"}
	src := rng.New(7)

	first, err := s.Allocate(src, participants, groups)
	require.NoError(t, err)

	snapshot := first.Clone()

	_, err = s.Allocate(src, participants, groups)
	require.NoError(t, err)

	// The second call must not reach back into the first returned allocation.
	require.Equal(t, snapshot, first)
	require.True(t, slices.Contains(flatten(first), "P1"))
}
