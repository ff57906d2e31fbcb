// Package source provides built-in participant source implementations.
//
// Participant sources supply the participant universe to programs that wrap
// the allocation engine; the engine itself takes plain slices. The package
// includes:
//
//   - Static: Fixed list of participant identifiers
//   - File: One identifier per line on disk
//   - Sequence: Generated identifiers for simulations and examples
//
// Custom sources can be implemented by satisfying the types.ParticipantSource
// interface.
package source
