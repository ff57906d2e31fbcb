package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine and the reporter call these synchronously on the allocation
// path, so implementations must be cheap.
//
// This interface composes smaller, domain-focused interfaces so embedders
// can implement only the slice they care about and delegate the rest.
type MetricsCollector interface {
	EngineMetrics
	ReporterMetrics
}

// EngineMetrics defines metrics for allocation engine operations.
type EngineMetrics interface {
	// RecordAllocation records one completed strategy run.
	//
	// Parameters:
	//   - strategy: Strategy name ("simple", "block", "stratified", ...)
	//   - participants: Number of participants handed to the strategy
	//   - seconds: Wall-clock duration of the run
	RecordAllocation(strategy string, participants int, seconds float64)

	// RecordAllocationError records one failed strategy run.
	//
	// Parameters:
	//   - strategy: Strategy name the failure belongs to
	RecordAllocationError(strategy string)
}

// ReporterMetrics defines metrics for balance reporter operations.
type ReporterMetrics interface {
	// RecordGroupSize sets the current size of one group (gauge metric).
	RecordGroupSize(group string, size int)

	// RecordBalanceSpread sets the max-minus-min group size observed by the
	// most recent randomization check (gauge metric).
	RecordBalanceSpread(spread int)
}
