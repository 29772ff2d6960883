package solarsystem

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordEdits(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	sys, earth, _ := newEarthSystem(t, WithMetrics(metrics))
	_, err := earth.AddNewMoonXY(5, 5, 1)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.bodiesAdded.WithLabelValues("Star")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.bodiesAdded.WithLabelValues("Planet")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.bodiesAdded.WithLabelValues("Moon")))

	earth.RemoveFromSystem()
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.bodiesRemoved.WithLabelValues("Planet")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.bodiesRemoved.WithLabelValues("Moon")))

	_, err = sys.FindCelestialBody("Sun")
	require.NoError(t, err)
	_, err = sys.FindCelestialBody("Earth")
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.lookups.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.lookups.WithLabelValues("not_found")))

	_, err = sys.Star().AddNewPlanetXY(0, 0, 1)
	require.NoError(t, err)
	sys.DetectCollisions()
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.collisionScans))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.collisionsFound))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.recordAdded(KindMoon)
	m.recordRemoved(KindPlanet)
	m.recordLookup(false)
	m.recordCollisionScan(3)
}
