package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/trialloc/internal/rng"
	"github.com/arloliu/trialloc/types"
)

func makeClusters() types.Clusters {
	return types.Clusters{
		{Name: "clinic-a", Members: []string{"P1", "P2"}},
		{Name: "clinic-b", Members: []string{"P3", "P4"}},
		{Name: "clinic-c", Members: []string{"P5", "P6"}},
		{Name: "clinic-d", Members: []string{"P7", "P8"}},
	}
}

func TestCluster_Allocate(t *testing.T) {
	t.Run("four clusters of two split evenly into two groups", func(t *testing.T) {
		c := NewCluster(makeClusters())
		groups := []string{"Treatment", "Control"}

		alloc, err := c.Allocate(rng.New(42), makeParticipants(8), groups)

		require.NoError(t, err)
		// Two clusters of two participants per group.
		require.Len(t, alloc["Treatment"], 4)
		require.Len(t, alloc["Control"], 4)
		require.ElementsMatch(t, makeParticipants(8), flatten(alloc))
	})

	t.Run("clusters stay whole", func(t *testing.T) {
		c := NewCluster(makeClusters())
		groups := []string{"A", "B"}

		alloc, err := c.Allocate(rng.New(7), makeParticipants(8), groups)
		require.NoError(t, err)

		// Both members of every cluster land in the same group.
		groupOf := make(map[string]string)
		for g, members := range alloc {
			for _, p := range members {
				groupOf[p] = g
			}
		}
		for _, cluster := range makeClusters() {
			require.Equal(t, groupOf[cluster.Members[0]], groupOf[cluster.Members[1]],
				"cluster %s split across groups", cluster.Name)
		}
	})

	t.Run("deals clusters round-robin in shuffled order", func(t *testing.T) {
		c := NewCluster(makeClusters())
		groups := []string{"A", "B"}

		alloc, err := c.Allocate(identitySource{}, makeParticipants(8), groups)

		require.NoError(t, err)
		// Identity shuffle keeps declared cluster order: a,c to A and b,d to B,
		// with cluster-internal member order preserved.
		require.Equal(t, []string{"P1", "P2", "P5", "P6"}, alloc["A"])
		require.Equal(t, []string{"P3", "P4", "P7", "P8"}, alloc["B"])
	})

	t.Run("cluster counts differ by at most one", func(t *testing.T) {
		clusters := types.Clusters{
			{Name: "c1", Members: []string{"P1"}},
			{Name: "c2", Members: []string{"P2", "P3", "P4"}},
			{Name: "c3", Members: []string{"P5"}},
		}
		groups := []string{"A", "B"}

		for seed := uint64(0); seed < 10; seed++ {
			alloc, err := NewCluster(clusters).Allocate(rng.New(seed), makeParticipants(5), groups)
			require.NoError(t, err)

			// One group gets two clusters, the other one; participant counts
			// follow cluster sizes and are not separately balanced.
			total := len(alloc["A"]) + len(alloc["B"])
			require.Equal(t, 5, total, "seed %d", seed)
		}
	})

	t.Run("does not mutate caller clusters or participants", func(t *testing.T) {
		clusters := makeClusters()
		participants := makeParticipants(8)

		_, err := NewCluster(clusters).Allocate(rng.New(42), participants, []string{"A", "B"})

		require.NoError(t, err)
		require.Equal(t, makeClusters(), clusters)
		require.Equal(t, makeParticipants(8), participants)
	})

	t.Run("same seed reproduces the allocation", func(t *testing.T) {
		groups := []string{"A", "B"}

		first, err := NewCluster(makeClusters()).Allocate(rng.New(42), makeParticipants(8), groups)
		require.NoError(t, err)
		second, err := NewCluster(makeClusters()).Allocate(rng.New(42), makeParticipants(8), groups)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("unknown cluster member", func(t *testing.T) {
		clusters := types.Clusters{{Name: "c1", Members: []string{"P1", "P99"}}}

		_, err := NewCluster(clusters).Allocate(rng.New(42), makeParticipants(8), []string{"A", "B"})

		require.ErrorIs(t, err, types.ErrUnknownParticipant)
		require.ErrorContains(t, err, "P99")
		require.ErrorContains(t, err, "c1")
	})

	t.Run("returns error when groups is empty", func(t *testing.T) {
		_, err := NewCluster(makeClusters()).Allocate(rng.New(42), makeParticipants(8), nil)
		require.ErrorIs(t, err, types.ErrNoGroups)
	})

	t.Run("participants outside every cluster are excluded", func(t *testing.T) {
		clusters := types.Clusters{{Name: "c1", Members: []string{"P1", "P2"}}}

		alloc, err := NewCluster(clusters).Allocate(rng.New(42), makeParticipants(8), []string{"A", "B"})

		require.NoError(t, err)
		require.Len(t, flatten(alloc), 2)
	})
}

func TestCluster_Name(t *testing.T) {
	require.Equal(t, "cluster", NewCluster(nil).Name())
}
