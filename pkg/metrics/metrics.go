package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SamplesIngested     prometheus.Counter
	AlertsRaised        *prometheus.CounterVec
	CredentialRotations prometheus.Counter
	EventsPublished     *prometheus.CounterVec
	DeliveryDrops       prometheus.Counter
	IngestTime          prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		SamplesIngested: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_ingested_total",
			Help:      "The total number of ingested telemetry samples",
		}),
		AlertsRaised: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_raised_total",
			Help:      "The total number of raised alerts",
		}, []string{"type"}),
		CredentialRotations: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "credential_rotations_total",
			Help:      "The total number of credential rotations",
		}),
		EventsPublished: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "The total number of events published to subscriber groups",
		}, []string{"event"}),
		DeliveryDrops: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_drops_total",
			Help:      "The total number of events dropped for slow subscribers",
		}),
		IngestTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sample_ingest_time_seconds",
			Help:      "Time taken to ingest one telemetry sample",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// The Inc helpers are nil-safe so cores built without metrics (tests) need no
// guards at call sites.

func (m *Metrics) IncSamples() {
	if m == nil {
		return
	}
	m.SamplesIngested.Inc()
}

func (m *Metrics) IncAlert(alertType string) {
	if m == nil {
		return
	}
	m.AlertsRaised.WithLabelValues(alertType).Inc()
}

func (m *Metrics) IncRotations() {
	if m == nil {
		return
	}
	m.CredentialRotations.Inc()
}

func (m *Metrics) IncEvent(eventType string) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(eventType).Inc()
}

func (m *Metrics) IncDrop() {
	if m == nil {
		return
	}
	m.DeliveryDrops.Inc()
}

func (m *Metrics) ObserveIngest(d time.Duration) {
	if m == nil {
		return
	}
	m.IngestTime.Observe(d.Seconds())
}
