package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decision outcomes.
const (
	OutcomeAllowed   = "allowed"
	OutcomeMissing   = "missing_key"
	OutcomeInvalid   = "invalid_key"
	OutcomeExhausted = "exhausted"
)

type Metrics struct {
	Decisions *prometheus.CounterVec
}

// New registers the quota metrics with reg, or the default registerer when
// reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "statehouse_ratelimit_decisions_total",
			Help: "API key quota decisions by tier and outcome",
		}, []string{"tier", "outcome"}),
	}
}

func (m *Metrics) IncrementDecision(tier, outcome string) {
	m.Decisions.WithLabelValues(tier, outcome).Inc()
}
