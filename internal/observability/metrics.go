package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	cipherOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tapcode",
			Subsystem: "cipher",
			Name:      "operations_total",
			Help:      "Cipher and grid operations by outcome.",
		},
		[]string{"op", "result"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tapcode",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tapcode",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Operation labels recorded by RecordOperation.
const (
	OpEncode   = "encode"
	OpDecode   = "decode"
	OpSetGrid  = "set_grid"
	OpSaveGrid = "save_grid"
	OpLoadGrid = "load_grid"
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(cipherOperations, httpRequests, httpDuration)
	})
}

// RecordOperation counts one cipher or grid operation; err decides the result label.
func RecordOperation(op string, err error) {
	RegisterMetrics()
	result := "ok"
	if err != nil {
		result = "error"
	}
	cipherOperations.WithLabelValues(op, result).Inc()
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
