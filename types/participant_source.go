package types

import "context"

// ParticipantSource provides the participant universe to callers that wrap
// the engine (the CLI, embedding services).
//
// The engine itself takes plain slices; sources exist so the surrounding
// program can decide where identifiers come from:
//   - Static: fixed list known at startup
//   - File: one identifier per line on disk
//   - Sequence: generated identifiers for simulations and examples
//   - Custom: any registry or enrollment system lookup
type ParticipantSource interface {
	// List returns all participant identifiers in a stable order.
	//
	// Implementations should:
	//   - Return consistent results for the same backend state
	//   - Handle context cancellation gracefully
	//   - Never return duplicate identifiers
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []string: Ordered participant identifiers
	//   - error: Retrieval error (nil on success)
	List(ctx context.Context) ([]string, error)
}
