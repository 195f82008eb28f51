package supervisor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports the inbox backlog to Prometheus.
type Metrics struct {
	Pending          prometheus.Gauge
	Processing       prometheus.Gauge
	Failed           prometheus.Gauge
	Completed        prometheus.Gauge
	OldestPendingAge prometheus.Gauge
	EventsProcessed  *prometheus.CounterVec
}

// NewMetrics creates and registers the supervisor metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Pending: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warden_inbox_pending",
			Help: "Inbox events awaiting a policy decision",
		}),
		Processing: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warden_inbox_processing",
			Help: "Inbox events currently being processed",
		}),
		Failed: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warden_inbox_failed",
			Help: "Inbox events whose policy errored",
		}),
		Completed: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warden_inbox_completed",
			Help: "Inbox events processed to completion",
		}),
		OldestPendingAge: factory.NewGauge(prometheus.GaugeOpts{
			Name: "warden_inbox_oldest_pending_age_seconds",
			Help: "Age of the oldest pending inbox event",
		}),
		EventsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_supervisor_events_total",
			Help: "Processed inbox events by policy and action",
		}, []string{"policy", "action"}),
	}
}

// Observe publishes a backlog snapshot.
func (m *Metrics) Observe(b BacklogMetrics) {
	m.Pending.Set(float64(b.Pending))
	m.Processing.Set(float64(b.Processing))
	m.Failed.Set(float64(b.Failed))
	m.Completed.Set(float64(b.Completed))
	m.OldestPendingAge.Set(b.OldestPendingAgeSeconds)
}
