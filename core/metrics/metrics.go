package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "catalog_sync"

var (
	// Operations counts engine operations by name and outcome.
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of reconciliation operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	// RemoteRequests observes store API latency.
	RemoteRequests = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "remote_request_duration_seconds",
			Help:      "Latency of store catalog API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"store", "method", "status"},
	)

	// BatchItems counts batch items processed by result.
	BatchItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_items_total",
			Help:      "Number of batch items processed.",
		},
		[]string{"result"},
	)
)

// Handler exposes the default registry for Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
