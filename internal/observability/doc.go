// Package observability groups the logging, metrics and tracing
// infrastructure of the API.
//
// Subpackages:
//   - logging: slog construction and request-scoped loggers
//   - metrics: Prometheus collectors for HTTP traffic and store operations
//   - tracing: OpenTelemetry tracer provider and HTTP middleware
package observability
