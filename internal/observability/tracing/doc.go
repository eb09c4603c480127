// Package tracing provides OpenTelemetry tracing for the API.
//
// Init installs the global tracer provider and W3C propagators; Middleware
// opens a server span per request; StartSpan opens child spans, for example
// around each document store query.
//
//	shutdown, err := tracing.Init(tracing.Config{ServiceName: "meetvoice-api", Enabled: true, SampleRatio: 1})
//	defer shutdown(ctx)
package tracing
