package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence_List(t *testing.T) {
	t.Run("generates prefixed identifiers", func(t *testing.T) {
		participants, err := NewSequence("P", 4).List(context.Background())

		require.NoError(t, err)
		require.Equal(t, []string{"P-1", "P-2", "P-3", "P-4"}, participants)
	})

	t.Run("zero count gives empty list", func(t *testing.T) {
		participants, err := NewSequence("P", 0).List(context.Background())

		require.NoError(t, err)
		require.Empty(t, participants)
	})
}
