package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// withRecorder installs an in-memory exporter for the duration of the test.
func withRecorder(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	prevTracer := tracer
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	tracer = tp.Tracer(TracerName)

	t.Cleanup(func() {
		tracer = prevTracer
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
		_ = tp.Shutdown(context.Background())
	})
	return exporter, tp
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestMiddleware_CreatesSpan(t *testing.T) {
	exporter, _ := withRecorder(t)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	}))
	serve(h, "/articles?page=2&limit=5")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "GET /articles", span.Name)

	attrs := map[string]string{}
	for _, kv := range span.Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "GET", attrs["http.method"])
	assert.Equal(t, "/articles", attrs["http.path"])
	assert.Equal(t, "page=2&limit=5", attrs["http.query"])
	assert.Equal(t, "200", attrs["http.status_code"])
	assert.Equal(t, "2", attrs["http.response_size"])
}

func TestMiddleware_SpanNameUsesRouteTemplate(t *testing.T) {
	exporter, _ := withRecorder(t)

	serve(Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})), "/articles/some-slug")

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /articles/:slug", spans[0].Name)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "/articles/:slug", attrs["http.route"])
	assert.Equal(t, "/articles/some-slug", attrs["http.path"])
	assert.Equal(t, "404", attrs["http.status_code"])
}

func TestMiddleware_AddsTraceIDToResponse(t *testing.T) {
	withRecorder(t)

	rr := serve(Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})), "/")

	traceID := rr.Header().Get("X-Trace-Id")
	assert.Len(t, traceID, 32)
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter, _ := withRecorder(t)

	var seen string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles/hello", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", spans[0].SpanContext.TraceID().String())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", seen)
}

func TestMiddleware_SpanStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   codes.Code
	}{
		{name: "server error", status: http.StatusInternalServerError, want: codes.Error},
		{name: "not found", status: http.StatusNotFound, want: codes.Unset},
		{name: "ok", status: http.StatusOK, want: codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter, _ := withRecorder(t)

			serve(Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})), "/articles/x")

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.want, spans[0].Status.Code)
		})
	}
}

func TestStartSpan_ChildOfRequestSpan(t *testing.T) {
	exporter, _ := withRecorder(t)

	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, span := StartSpan(r.Context(), "mongodb.find")
		span.End()
	}))
	serve(h, "/articles")

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	child, parent := spans[0], spans[1]
	assert.Equal(t, "mongodb.find", child.Name)
	assert.Equal(t, parent.SpanContext.SpanID(), child.Parent.SpanID())
}

func TestTraceID_Empty(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))
}
