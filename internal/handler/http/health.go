// Package http provides the shared HTTP plumbing of the API: the root, health
// and probe endpoints, access logging, panic recovery, timeouts and metrics.
// Resource handlers live in subpackages.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"meetvoice-api/internal/handler/http/respond"
)

// RootMessage is the body of GET /.
const RootMessage = "MeetVoice API OK"

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status    string `json:"status"`            // "healthy" or "unhealthy"
	Message   string `json:"message,omitempty"` // Optional status message
	LatencyMS int64  `json:"latency_ms"`
}

// RootHandler answers GET / with a plain-text liveness message.
// Only the exact root path is served; anything else falls through to 404.
type RootHandler struct{}

// @Summary      API status
// @Description  Plain-text confirmation that the API process is up.
// @Tags         system
// @Produce      plain
// @Success      200 {string} string "MeetVoice API OK"
// @Router       / [get]
func (RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.Text(w, http.StatusOK, RootMessage)
}

// HealthHandler reports the health of the process and its document store.
// Returns 200 when the store answers a ping, 503 otherwise.
type HealthHandler struct {
	Store   Pinger
	Version string
	Timeout time.Duration // ping timeout, default 5s
}

// @Summary      Health check
// @Description  Pings the document store and reports per-check status.
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse "Healthy"
// @Failure      503 {object} HealthResponse "Document store unreachable"
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	check := checkStore(ctx, h.Store)

	status, code := "healthy", http.StatusOK
	if check.Status != "healthy" {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]CheckStatus{"mongodb": check},
		Version:   h.Version,
	})
}

func checkStore(ctx context.Context, store Pinger) CheckStatus {
	if store == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}

	start := time.Now()
	err := store.Ping(ctx)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		slog.Default().Warn("store health check failed", slog.String("error", respond.SanitizeError(err)))
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err), LatencyMS: latency}
	}
	return CheckStatus{Status: "healthy", LatencyMS: latency}
}

// ReadyHandler handles readiness probe requests.
// It returns 200 "ready" once the document store answers a ping.
type ReadyHandler struct {
	Store Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Store == nil {
		respond.Text(w, http.StatusServiceUnavailable, "store not configured")
		return
	}
	if err := h.Store.Ping(ctx); err != nil {
		respond.Text(w, http.StatusServiceUnavailable, "store not ready: "+respond.SanitizeError(err))
		return
	}
	respond.Text(w, http.StatusOK, "ready")
}

// LiveHandler handles liveness probe requests. It always returns 200 "alive".
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.Text(w, http.StatusOK, "alive")
}
