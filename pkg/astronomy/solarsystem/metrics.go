package solarsystem

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects counters about edits and queries on a SolarSystem.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	bodiesAdded     *prometheus.CounterVec
	bodiesRemoved   *prometheus.CounterVec
	lookups         *prometheus.CounterVec
	collisionScans  prometheus.Counter
	collisionsFound prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
// Pass a fresh prometheus.NewRegistry() in tests to avoid duplicate registrations.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bodiesAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "planetarium",
				Name:      "bodies_added_total",
				Help:      "Total number of celestial bodies added",
			},
			[]string{"kind"},
		),
		bodiesRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "planetarium",
				Name:      "bodies_removed_total",
				Help:      "Total number of celestial bodies removed, cascades included",
			},
			[]string{"kind"},
		),
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "planetarium",
				Name:      "lookups_total",
				Help:      "Identifier lookups by result",
			},
			[]string{"result"},
		),
		collisionScans: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "planetarium",
				Name:      "collision_scans_total",
				Help:      "Number of full pairwise collision scans",
			},
		),
		collisionsFound: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "planetarium",
				Name:      "collisions",
				Help:      "Colliding pairs found by the last scan",
			},
		),
	}

	reg.MustRegister(
		m.bodiesAdded,
		m.bodiesRemoved,
		m.lookups,
		m.collisionScans,
		m.collisionsFound,
	)

	return m
}

func (m *Metrics) recordAdded(kind Kind) {
	if m == nil {
		return
	}
	m.bodiesAdded.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) recordRemoved(kind Kind) {
	if m == nil {
		return
	}
	m.bodiesRemoved.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) recordLookup(found bool) {
	if m == nil {
		return
	}
	result := "found"
	if !found {
		result = "not_found"
	}
	m.lookups.WithLabelValues(result).Inc()
}

func (m *Metrics) recordCollisionScan(pairs int) {
	if m == nil {
		return
	}
	m.collisionScans.Inc()
	m.collisionsFound.Set(float64(pairs))
}
