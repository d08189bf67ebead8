package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the rendering server.
type metrics struct {
	renderPasses   prometheus.Counter
	renderDuration prometheus.Histogram
	patchesSent    prometheus.Counter
	hooksFired     prometheus.Counter
	activeSessions prometheus.Gauge
}

var (
	globalMetrics     *metrics
	globalMetricsOnce sync.Once
)

// serverMetrics returns the singleton metrics, registering them with the
// default Prometheus registry on first use.
func serverMetrics() *metrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = &metrics{
			renderPasses: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "loom",
				Name:      "render_passes_total",
				Help:      "Total number of reconciliation passes",
			}),
			renderDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Namespace: "loom",
				Name:      "render_duration_seconds",
				Help:      "Reconciliation pass duration in seconds",
				Buckets:   prometheus.DefBuckets,
			}),
			patchesSent: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "loom",
				Name:      "patches_sent_total",
				Help:      "Total number of patches sent to clients",
			}),
			hooksFired: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "loom",
				Name:      "hooks_fired_total",
				Help:      "Total number of lifecycle hooks fired",
			}),
			activeSessions: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "loom",
				Name:      "active_sessions",
				Help:      "Number of active WebSocket sessions",
			}),
		}
	})
	return globalMetrics
}
