package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver is a prometheus-backed Observer. It registers its
// collectors on the registerer it is constructed with, so each host
// application keeps its own isolated registry.
type MetricsObserver struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	payloadBytes      *prometheus.HistogramVec
}

// NewMetricsObserver creates a MetricsObserver and registers its collectors
// on reg. It panics if a collector with the same name is already registered,
// matching prometheus MustRegister semantics.
func NewMetricsObserver(reg prometheus.Registerer) *MetricsObserver {
	m := &MetricsObserver{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vectorhub_operations_total",
				Help: "Total number of client operations by component, operation and HTTP status.",
			},
			[]string{"component", "operation", "status"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vectorhub_operation_duration_seconds",
				Help:    "Duration of client operations in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"component", "operation"},
		),
		payloadBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vectorhub_request_payload_bytes",
				Help:    "Request payload size in bytes.",
				Buckets: prometheus.ExponentialBuckets(64, 4, 10),
			},
			[]string{"component", "operation"},
		),
	}

	reg.MustRegister(m.operationsTotal, m.operationDuration, m.payloadBytes)
	return m
}

// ObserveOperation records one completed operation.
func (m *MetricsObserver) ObserveOperation(ctx OperationContext) {
	status := strconv.Itoa(ctx.StatusCode)
	if ctx.Error != nil {
		status = "transport_error"
	}

	m.operationsTotal.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	m.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		m.payloadBytes.WithLabelValues(ctx.Component, ctx.Operation).Observe(float64(ctx.Size))
	}
}
