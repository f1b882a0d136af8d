// Package telemetry exposes grid health as Prometheus metrics and traces
// reconcile passes through OpenTelemetry.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	metricTilesCurrent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "videogrid",
		Name:      "tiles_current",
		Help:      "Number of tiles currently on screen.",
	})
	metricSurfaceAttaches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "videogrid",
		Name:      "surface_attach_total",
		Help:      "Total video surface sink attaches.",
	})
	metricSurfaceDetaches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "videogrid",
		Name:      "surface_detach_total",
		Help:      "Total video surface sink detaches.",
	})
	metricReconciles = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "videogrid",
		Name:      "reconcile_total",
		Help:      "Total reconcile passes applied to the grid.",
	})
	metricLayoutFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "videogrid",
		Name:      "layout_failures_total",
		Help:      "Fatal layout or capacity violations observed.",
	})
)

// RecordTiles sets the current tile count.
func RecordTiles(n int) {
	metricTilesCurrent.Set(float64(n))
}

// RecordAttach counts a surface sink attach.
func RecordAttach() {
	metricSurfaceAttaches.Inc()
}

// RecordDetach counts a surface sink detach.
func RecordDetach() {
	metricSurfaceDetaches.Inc()
}

// RecordReconcile counts one reconcile pass.
func RecordReconcile() {
	metricReconciles.Inc()
}

// RecordLayoutFailure counts a fatal layout violation.
func RecordLayoutFailure() {
	metricLayoutFailures.Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
