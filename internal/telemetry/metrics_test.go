package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserveQueryCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveQuery("Marketing", "popular")
	m.ObserveQuery("Marketing", "popular")
	m.ObserveQuery("", "rating")

	require.Equal(t, 2.0, testutil.ToFloat64(m.catalogQueries.WithLabelValues("Marketing", "popular")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.catalogQueries.WithLabelValues("All", "rating")))
}

func TestObserveCartOpTracksUnits(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveCartOp("add", 1)
	m.ObserveCartOp("add", 2)
	m.ObserveCartOp("remove", 0)

	require.Equal(t, 2.0, testutil.ToFloat64(m.cartOps.WithLabelValues("add")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.cartOps.WithLabelValues("remove")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.cartUnits))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveQuery("Marketing", "popular")
	m.ObserveCartOp("add", 1)
}
