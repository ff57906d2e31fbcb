package source

import (
	"context"
	"fmt"

	"github.com/arloliu/trialloc/types"
)

// Sequence implements a participant source generating numbered identifiers.
type Sequence struct {
	prefix string
	count  int
}

var _ types.ParticipantSource = (*Sequence)(nil)

// NewSequence creates a source generating identifiers <prefix>-1 .. <prefix>-count.
//
// Useful for simulations, examples, and load tests where identities only
// need to be unique, not meaningful.
//
// Parameters:
//   - prefix: Identifier prefix (e.g., "P" produces "P-1", "P-2", ...)
//   - count: Number of identifiers to generate
//
// Returns:
//   - *Sequence: Initialized sequence source
//
// Example:
//
//	src := source.NewSequence("P", 100)
//	participants, _ := src.List(ctx) // ["P-1", ..., "P-100"]
func NewSequence(prefix string, count int) *Sequence {
	return &Sequence{prefix: prefix, count: count}
}

// List returns the generated participant identifiers.
//
// Returns:
//   - []string: Identifiers <prefix>-1 through <prefix>-count
//   - error: Always nil (never fails)
func (s *Sequence) List(_ context.Context) ([]string, error) {
	participants := make([]string, s.count)
	for i := range participants {
		participants[i] = fmt.Sprintf("%s-%d", s.prefix, i+1)
	}

	return participants, nil
}
