package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheus_Defaults(t *testing.T) {
	t.Parallel()

	collector := NewPrometheus(nil, "")

	require.NotNil(t, collector)
	require.Equal(t, "trialloc", collector.namespace)
}

func TestPrometheusCollector_RecordAllocation(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	collector.RecordAllocation("simple", 8, 0.002)
	collector.RecordAllocation("simple", 8, 0.003)
	collector.RecordAllocationError("block")

	success := collector.allocations.WithLabelValues("simple", "success")
	failure := collector.allocations.WithLabelValues("block", "failure")

	require.InDelta(t, 2, testutil.ToFloat64(success), 0.0001)
	require.InDelta(t, 1, testutil.ToFloat64(failure), 0.0001)
}

func TestPrometheusCollector_ReporterGauges(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	collector.RecordGroupSize("treatment", 4)
	collector.RecordGroupSize("control", 4)
	collector.RecordBalanceSpread(0)

	treatment := collector.groupSize.WithLabelValues("treatment")
	require.InDelta(t, 4, testutil.ToFloat64(treatment), 0.0001)
	require.InDelta(t, 0, testutil.ToFloat64(collector.balanceSpread), 0.0001)

	// Gauges overwrite on the next check.
	collector.RecordGroupSize("treatment", 5)
	collector.RecordBalanceSpread(2)
	require.InDelta(t, 5, testutil.ToFloat64(treatment), 0.0001)
	require.InDelta(t, 2, testutil.ToFloat64(collector.balanceSpread), 0.0001)
}

func TestPrometheusCollector_LazyRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	// Constructing two collectors against the same registry must not panic;
	// registration happens on first use only.
	first := NewPrometheus(reg, "lazy")
	_ = NewPrometheus(reg, "lazy")

	require.NotPanics(t, func() {
		first.RecordAllocation("simple", 1, 0.001)
		first.RecordAllocation("simple", 1, 0.001)
	})
}
