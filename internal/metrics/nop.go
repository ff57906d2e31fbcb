// Package metrics provides metrics collector implementations for trialloc.
package metrics

import "github.com/arloliu/trialloc/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	eng := trialloc.NewEngine(participants, groups, trialloc.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// EngineMetrics implementation

// RecordAllocation discards the allocation outcome metric.
func (n *NopMetrics) RecordAllocation(_ /* strategy */ string, _ /* participants */ int, _ /* seconds */ float64) {
	// No-op
}

// RecordAllocationError discards the allocation error metric.
func (n *NopMetrics) RecordAllocationError(_ /* strategy */ string) {
	// No-op
}

// ReporterMetrics implementation

// RecordGroupSize discards the group size metric.
func (n *NopMetrics) RecordGroupSize(_ /* group */ string, _ /* size */ int) {
	// No-op
}

// RecordBalanceSpread discards the balance spread metric.
func (n *NopMetrics) RecordBalanceSpread(_ /* spread */ int) {
	// No-op
}
