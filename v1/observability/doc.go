// Package observability defines the Observer hook through which client
// packages report completed operations, plus a prometheus-backed
// implementation.
//
// Client packages accept an optional Observer and notify it once per
// operation with an OperationContext (component, operation, resource,
// duration, status, payload size). A nil observer costs nothing.
//
//	reg := prometheus.NewRegistry()
//	obs := observability.NewMetricsObserver(reg)
//	client, err := rest.NewClient(cfg, rest.WithObserver(obs))
//
// Combine multiple sinks with MultiObserver. Tracing is not an Observer:
// request spans are created inline by the transport executor via the
// OpenTelemetry API, since spans must wrap the call rather than follow it.
package observability
