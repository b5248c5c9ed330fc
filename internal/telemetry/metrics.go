// Package telemetry exposes operational counters for the storefront.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks query traffic and cart activity.
type Metrics struct {
	catalogQueries *prometheus.CounterVec
	cartOps        *prometheus.CounterVec
	cartUnits      prometheus.Gauge
}

// NewMetrics constructs and registers storefront metrics with the provided
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		catalogQueries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aiz",
				Subsystem: "catalog",
				Name:      "queries_total",
				Help:      "Catalogue listing queries served, by category and sort key.",
			},
			[]string{"category", "sort"},
		),
		cartOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "aiz",
				Subsystem: "cart",
				Name:      "operations_total",
				Help:      "Cart mutations applied, by operation.",
			},
			[]string{"op"},
		),
		cartUnits: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "aiz",
				Subsystem: "cart",
				Name:      "units",
				Help:      "Current total unit count across cart lines.",
			},
		),
	}
	reg.MustRegister(m.catalogQueries, m.cartOps, m.cartUnits)
	return m
}

// ObserveQuery records one served listing query.
func (m *Metrics) ObserveQuery(category, sort string) {
	if m == nil {
		return
	}
	if category == "" {
		category = "All"
	}
	m.catalogQueries.WithLabelValues(category, sort).Inc()
}

// ObserveCartOp records one applied cart mutation and the resulting unit count.
func (m *Metrics) ObserveCartOp(op string, units int) {
	if m == nil {
		return
	}
	m.cartOps.WithLabelValues(op).Inc()
	m.cartUnits.Set(float64(units))
}
