// Package metrics counts the outcomes of API calls made by the client.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Outcome labels, one per result class of the request helper.
const (
	OutcomeSuccess      = "success"
	OutcomeUnauthorized = "unauthorized"
	OutcomeFailed       = "request_failed"
	OutcomeUnavailable  = "unavailable"
)

// Recorder is what the request helper reports to.
type Recorder interface {
	RecordOutcome(outcome string)
	RecordLatency(d time.Duration)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "researchhub_client_requests_total",
			Help: "API calls by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "researchhub_client_request_duration_seconds",
			Help:    "Latency of API calls that got a response.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.requests, c.latency)
	return c
}

func (c *Collector) RecordOutcome(outcome string) {
	c.requests.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordLatency(d time.Duration) {
	c.latency.Observe(d.Seconds())
}

// Count returns the number of calls recorded with outcome.
func (c *Collector) Count(outcome string) float64 {
	var m dto.Metric
	if err := c.requests.WithLabelValues(outcome).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// OutcomeCount is one row of Summary.
type OutcomeCount struct {
	Outcome string
	Count   float64
}

// Summary lists every outcome with its count, successes first.
func (c *Collector) Summary() []OutcomeCount {
	outcomes := []string{OutcomeSuccess, OutcomeFailed, OutcomeUnauthorized, OutcomeUnavailable}

	rows := make([]OutcomeCount, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, OutcomeCount{Outcome: o, Count: c.Count(o)})
	}
	return rows
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordOutcome(string)        {}
func (Nop) RecordLatency(time.Duration) {}
