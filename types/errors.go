package types

import "errors"

// Sentinel errors for the Trialloc library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by error kind (configuration, lookup, data integrity)
//   - Use consistent messages across similar error types

// Configuration errors - invalid construction or strategy parameters.
// A strategy call that hits one of these fails before producing any
// allocation.
var (
	// ErrNoParticipants is returned when the participant universe is empty.
	ErrNoParticipants = errors.New("participant list is empty")

	// ErrDuplicateParticipant is returned when the participant universe
	// contains the same identifier more than once.
	ErrDuplicateParticipant = errors.New("duplicate participant identifier")

	// ErrNoGroups is returned when a strategy is invoked with an empty group list.
	ErrNoGroups = errors.New("group list is empty")

	// ErrTooFewGroups is returned when fewer than two groups are configured.
	ErrTooFewGroups = errors.New("at least two groups are required")

	// ErrDuplicateGroup is returned when the group list repeats a name.
	ErrDuplicateGroup = errors.New("duplicate group name")

	// ErrInvalidBlockSize is returned when a block size is smaller than one.
	ErrInvalidBlockSize = errors.New("block size must be at least 1")

	// ErrNoBlockSizes is returned when permuted-block randomization receives
	// an empty block size list.
	ErrNoBlockSizes = errors.New("block size list is empty")

	// ErrUnknownStrategy is returned when configuration names a strategy the
	// library does not provide.
	ErrUnknownStrategy = errors.New("unknown strategy name")

	// ErrStrategyRequired is returned when a nil strategy is passed to the engine.
	ErrStrategyRequired = errors.New("allocation strategy is required")

	// ErrRandomSourceRequired is returned when a nil random source is injected.
	ErrRandomSourceRequired = errors.New("random source is required")
)

// Lookup errors - a strategy side input and the participant universe disagree.
var (
	// ErrMissingCovariate is returned when a participant has no entry in the
	// covariate map handed to a balancing strategy.
	ErrMissingCovariate = errors.New("participant has no covariate entry")

	// ErrUnknownParticipant is returned when a stratum or cluster references
	// an identifier that is not part of the participant universe, or when an
	// allocation under verification contains one.
	ErrUnknownParticipant = errors.New("participant not in universe")
)

// Data integrity errors - reported by caller-side verification, never raised
// by strategy calls themselves. A strategy either fully succeeds or fails
// before producing an allocation; these errors describe allocations that were
// produced elsewhere and violate coverage.
var (
	// ErrNilAllocation is returned when a nil allocation is handed to the reporter.
	ErrNilAllocation = errors.New("allocation is nil")

	// ErrIncompleteAllocation is returned when verification finds a universe
	// member that was never assigned.
	ErrIncompleteAllocation = errors.New("allocation does not cover all participants")

	// ErrDuplicateAssignment is returned when verification finds a participant
	// assigned more than once, within one group or across groups.
	ErrDuplicateAssignment = errors.New("participant assigned more than once")
)
