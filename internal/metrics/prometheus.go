package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/trialloc/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics registration is lazy: collectors are created and registered on the
// first recorded observation, so constructing a PrometheusCollector never
// panics on duplicate registration by itself.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Engine metrics
	allocations        *prometheus.CounterVec
	allocationDuration *prometheus.HistogramVec
	allocationSize     *prometheus.HistogramVec

	// Reporter metrics
	groupSize     *prometheus.GaugeVec
	balanceSpread prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "trialloc" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "trialloc"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.allocations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "allocations_total",
			Help:      "Total allocation runs by strategy and result (success|failure).",
		}, []string{"strategy", "result"})

		p.allocationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "allocation_duration_seconds",
			Help:      "Duration of allocation runs in seconds by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8), // 100us .. ~1.6s
		}, []string{"strategy"})

		p.allocationSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "allocation_participants",
			Help:      "Number of participants per allocation run by strategy.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. ~16k
		}, []string{"strategy"})

		p.groupSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "report",
			Name:      "group_size",
			Help:      "Number of assignments per group in the last checked allocation.",
		}, []string{"group"})

		p.balanceSpread = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "report",
			Name:      "balance_spread",
			Help:      "Difference between largest and smallest group in the last checked allocation.",
		})

		p.reg.MustRegister(p.allocations)
		p.reg.MustRegister(p.allocationDuration)
		p.reg.MustRegister(p.allocationSize)
		p.reg.MustRegister(p.groupSize)
		p.reg.MustRegister(p.balanceSpread)
	})
}

// EngineMetrics implementation

// RecordAllocation records a successful allocation run.
func (p *PrometheusCollector) RecordAllocation(strategy string, participants int, seconds float64) {
	p.ensureRegistered()
	p.allocations.WithLabelValues(strategy, "success").Inc()
	p.allocationDuration.WithLabelValues(strategy).Observe(seconds)
	p.allocationSize.WithLabelValues(strategy).Observe(float64(participants))
}

// RecordAllocationError records a failed allocation run.
func (p *PrometheusCollector) RecordAllocationError(strategy string) {
	p.ensureRegistered()
	p.allocations.WithLabelValues(strategy, "failure").Inc()
}

// ReporterMetrics implementation

// RecordGroupSize sets the assignment count gauge for a group.
func (p *PrometheusCollector) RecordGroupSize(group string, size int) {
	p.ensureRegistered()
	p.groupSize.WithLabelValues(group).Set(float64(size))
}

// RecordBalanceSpread sets the balance spread gauge.
func (p *PrometheusCollector) RecordBalanceSpread(spread int) {
	p.ensureRegistered()
	p.balanceSpread.Set(float64(spread))
}
