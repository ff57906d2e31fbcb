package trialloc

import "github.com/arloliu/trialloc/types"

// Sentinel errors re-exported from the types package.
//
// These are the same error values as their types counterparts (assigned, not
// redeclared), so errors.Is matches regardless of which package a caller
// imports them from.

// Configuration errors - invalid construction or strategy parameters.
var (
	// ErrNoParticipants is returned when the participant universe is empty.
	ErrNoParticipants = types.ErrNoParticipants

	// ErrDuplicateParticipant is returned when the participant universe
	// contains the same identifier more than once.
	ErrDuplicateParticipant = types.ErrDuplicateParticipant

	// ErrNoGroups is returned when the group list is empty.
	ErrNoGroups = types.ErrNoGroups

	// ErrTooFewGroups is returned when fewer than two groups are configured.
	ErrTooFewGroups = types.ErrTooFewGroups

	// ErrDuplicateGroup is returned when the group list repeats a name.
	ErrDuplicateGroup = types.ErrDuplicateGroup

	// ErrInvalidBlockSize is returned when a block size is smaller than one.
	ErrInvalidBlockSize = types.ErrInvalidBlockSize

	// ErrNoBlockSizes is returned when permuted-block randomization receives
	// an empty block size list.
	ErrNoBlockSizes = types.ErrNoBlockSizes

	// ErrUnknownStrategy is returned when configuration names a strategy the
	// library does not provide.
	ErrUnknownStrategy = types.ErrUnknownStrategy

	// ErrStrategyRequired is returned when a nil strategy is passed to the engine.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrRandomSourceRequired is returned when a nil random source is injected.
	ErrRandomSourceRequired = types.ErrRandomSourceRequired
)

// Lookup errors - a strategy side input and the participant universe disagree.
var (
	// ErrMissingCovariate is returned when a participant has no entry in the
	// covariate map handed to a balancing strategy.
	ErrMissingCovariate = types.ErrMissingCovariate

	// ErrUnknownParticipant is returned when a stratum or cluster references
	// an identifier outside the participant universe.
	ErrUnknownParticipant = types.ErrUnknownParticipant
)

// Data integrity errors - reported by the reporter's verification helpers.
var (
	// ErrNilAllocation is returned when a nil allocation is handed to the reporter.
	ErrNilAllocation = types.ErrNilAllocation

	// ErrIncompleteAllocation is returned when verification finds a universe
	// member that was never assigned.
	ErrIncompleteAllocation = types.ErrIncompleteAllocation

	// ErrDuplicateAssignment is returned when verification finds a participant
	// assigned more than once.
	ErrDuplicateAssignment = types.ErrDuplicateAssignment
)
