// Package middleware provides cross-cutting HTTP middleware.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// Validator decides which origins are allowed.
	Validator OriginValidator

	// AllowedMethods is advertised on preflight responses. Empty means the
	// requested method is echoed back, which permits any method.
	AllowedMethods []string

	// AllowedHeaders is advertised on preflight responses. Empty means the
	// requested headers are echoed back, which permits any header.
	AllowedHeaders []string

	// ExposedHeaders lists response headers readable by browser scripts.
	ExposedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Logger receives policy violations (warn) and preflights (debug). Optional.
	Logger *slog.Logger
}

// PermissiveCORSConfig allows every origin, method and header.
func PermissiveCORSConfig(maxAge int, logger *slog.Logger) CORSConfig {
	return CORSConfig{
		Validator:      AnyOriginValidator{},
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-Id"},
		MaxAge:         maxAge,
		Logger:         logger,
	}
}

// NewCORSConfig builds a configuration from an origin list; "*" in the list
// allows every origin. Methods and headers are unrestricted.
func NewCORSConfig(origins []string, maxAge int, logger *slog.Logger) CORSConfig {
	cfg := PermissiveCORSConfig(maxAge, logger)
	cfg.Validator = NewOriginValidator(origins)
	return cfg
}

// CORS returns an HTTP middleware that handles CORS for cross-origin requests.
//
// Behavior:
//   - If Origin header is empty, skip CORS processing (same-origin request)
//   - If Origin is not allowed, log warning and continue without CORS headers
//   - If every origin is allowed, respond with Access-Control-Allow-Origin: *
//   - Otherwise echo the origin and add Vary: Origin
//   - OPTIONS preflights are answered with 204 No Content without calling next
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.Validator.IsAllowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr))
				}
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			if config.Validator.AllowsAny() {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			}
			if len(config.ExposedHeaders) > 0 {
				h.Set("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			reqMethod := r.Header.Get("Access-Control-Request-Method")
			reqHeaders := r.Header.Get("Access-Control-Request-Headers")

			h.Set("Access-Control-Allow-Methods", allowList(config.AllowedMethods, reqMethod))
			if allowed := allowList(config.AllowedHeaders, reqHeaders); allowed != "" {
				h.Set("Access-Control-Allow-Headers", allowed)
			}
			h.Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))

			if config.Logger != nil {
				config.Logger.Debug("CORS: preflight request",
					slog.String("origin", origin),
					slog.String("requested_method", reqMethod),
					slog.String("requested_headers", reqHeaders))
			}

			w.WriteHeader(http.StatusNoContent)
		})
	}
}

// allowList returns the configured list, or echoes requested when the list is empty.
func allowList(configured []string, requested string) string {
	if len(configured) == 0 {
		return requested
	}
	return strings.Join(configured, ", ")
}
