package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the civic record endpoints.
type Metrics struct {
	ListDuration   *prometheus.HistogramVec
	DetailDuration *prometheus.HistogramVec
	CountSkipped   *prometheus.CounterVec
	DetailMisses   *prometheus.CounterVec
}

var buckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// New creates a Metrics instance registered with reg. A nil reg registers
// with the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ListDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "statehouse_list_duration_seconds",
			Help:    "Duration of paginated list requests by entity",
			Buckets: buckets,
		}, []string{"entity"}),
		DetailDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "statehouse_detail_duration_seconds",
			Help:    "Duration of single-record lookups by entity",
			Buckets: buckets,
		}, []string{"entity"}),
		CountSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "statehouse_count_skipped_total",
			Help: "Paginated requests served without a count query",
		}, []string{"entity"}),
		DetailMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "statehouse_detail_not_found_total",
			Help: "Single-record lookups that matched nothing",
		}, []string{"entity"}),
	}
}

// ObserveList records the duration of a list operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveList(entity string, start time.Time) {
	m.ListDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
}

// ObserveDetail records the duration of a detail lookup.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveDetail(entity string, start time.Time) {
	m.DetailDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
}

// IncrementCountSkipped records a page served in skip-count mode.
func (m *Metrics) IncrementCountSkipped(entity string) {
	m.CountSkipped.WithLabelValues(entity).Inc()
}

// IncrementDetailMiss records a lookup that matched no record.
func (m *Metrics) IncrementDetailMiss(entity string) {
	m.DetailMisses.WithLabelValues(entity).Inc()
}
