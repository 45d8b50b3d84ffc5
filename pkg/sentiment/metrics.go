package sentiment

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports analysis outcomes and latencies to Prometheus.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Analyses      *prometheus.CounterVec
	ModelDuration prometheus.Histogram
	LimiterWait   prometheus.Histogram
}

// NewMetrics registers the sentiment collectors with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	m := &Metrics{
		Analyses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentiment_analyses_total",
				Help: "Total sentiment analyses by outcome",
			},
			[]string{"outcome"},
		),
		ModelDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sentiment_model_call_duration_seconds",
				Help:    "Model call latency in seconds, including failed calls",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		LimiterWait: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sentiment_limiter_wait_seconds",
				Help:    "Time spent waiting for the outbound rate limiter in seconds",
				Buckets: []float64{0, .01, .05, .1, .5, 1, 2.5, 5, 10},
			},
		),
	}

	// Pre-create every label so dashboards see zeros instead of gaps.
	for _, o := range Outcomes() {
		m.Analyses.WithLabelValues(string(o))
	}

	return m
}

func (m *Metrics) observeOutcome(o Outcome) {
	if m == nil {
		return
	}
	m.Analyses.WithLabelValues(string(o)).Inc()
}

func (m *Metrics) observeModelCall(d time.Duration) {
	if m == nil {
		return
	}
	m.ModelDuration.Observe(d.Seconds())
}

func (m *Metrics) observeLimiterWait(d time.Duration) {
	if m == nil {
		return
	}
	m.LimiterWait.Observe(d.Seconds())
}
