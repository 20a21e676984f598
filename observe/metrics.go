package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomasbasham/formflat"
)

// Metrics counts pipeline events with Prometheus collectors, all namespaced
// "formflat":
//
//   - events_total{stage}: events per pipeline stage.
//   - fields_removed_total: entries dropped by the clean stage.
//   - fields_appended_total: fields appended to a form-data container.
type Metrics struct {
	events   *prometheus.CounterVec
	removed  prometheus.Counter
	appended prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg, or with
// [prometheus.DefaultRegisterer] if reg is nil. Registering twice with the
// same registry panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "formflat",
			Name:      "events_total",
			Help:      "Pipeline events by stage",
		}, []string{"stage"}),
		removed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "formflat",
			Name:      "fields_removed_total",
			Help:      "Entries removed because their value was empty",
		}),
		appended: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "formflat",
			Name:      "fields_appended_total",
			Help:      "Fields appended to form-data containers",
		}),
	}
}

// Observe implements [formflat.Observer].
func (m *Metrics) Observe(e formflat.Event) {
	m.events.WithLabelValues(string(e.Stage)).Inc()
	switch e.Stage {
	case formflat.StageClean:
		m.removed.Add(float64(e.Removed))
	case formflat.StageAppend:
		m.appended.Inc()
	}
}
