package source

import (
	"context"
	"sync"

	"github.com/arloliu/trialloc/types"
)

// Static implements a participant source with a fixed list of identifiers.
type Static struct {
	mu           sync.RWMutex
	participants []string
}

var _ types.ParticipantSource = (*Static)(nil)

// NewStatic creates a new static participant source.
//
// The source returns a fixed list of participant identifiers that never
// changes on its own. Useful for testing and scenarios where the universe is
// known at startup.
//
// Parameters:
//   - participants: Fixed list of participant identifiers
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]string{"P1", "P2", "P3", "P4"})
//	participants, _ := src.List(ctx)
//	eng, err := trialloc.NewEngine(participants, groups, trialloc.WithSeed(42))
func NewStatic(participants []string) *Static {
	return &Static{
		participants: participants,
	}
}

// List returns the static list of participant identifiers.
//
// Returns:
//   - []string: Copy of the fixed participant list
//   - error: Always nil (never fails)
func (s *Static) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.participants))
	copy(result, s.participants)

	return result, nil
}

// Update replaces the participant list.
//
// This allows the static source to simulate enrollment changes between
// allocation runs, which is useful for testing.
//
// Parameters:
//   - participants: New list of participant identifiers
//
// Example:
//
//	src := source.NewStatic(initialParticipants)
//	// Later: the trial enrolled more participants
//	src.Update(expandedParticipants)
func (s *Static) Update(participants []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.participants = make([]string, len(participants))
	copy(s.participants, participants)
}
