// Package respond provides utilities for sending HTTP responses in JSON format.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"meetvoice-api/internal/repository"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error" example:"Article 'hello-world' not found"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// Text writes a plain text response.
func Text(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// StoreFailure writes a 500 response carrying the document store's own error
// text, with credentials masked. Errors that did not come from the store are
// reported as "internal server error".
func StoreFailure(w http.ResponseWriter, err error) {
	var se *repository.StoreError
	if errors.As(err, &se) {
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: sanitize(se.Cause())})
		return
	}
	SafeError(w, http.StatusInternalServerError, err)
}

// SafeError hides internal error details from clients. Errors with a 5xx code
// are logged and replaced by "internal server error"; others are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code < 500 {
		Error(w, code, err)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, ErrorBody{Error: "internal server error"})
}
