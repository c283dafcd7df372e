package httpresp

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
)

// Error categories surfaced in the envelope message field.
const (
	CategoryValidation = "VALIDATION_ERROR"
	CategoryNotFound   = "NOT_FOUND"
	CategoryRateLimit  = "RATE_LIMITED"
	CategoryInternal   = "INTERNAL_ERROR"
)

type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// APIError carries a machine-readable field-error code; the client maps
// codes to localized messages.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(w http.ResponseWriter, status int, data any) {
	write(w, status, Envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func Error(w http.ResponseWriter, status int, code, message string, details any) {
	write(w, status, Envelope{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func write(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// ClientIP prefers the first X-Forwarded-For hop, then RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Recoverer is the single error boundary: panics are logged and turned
// into a generic envelope without leaking internals.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic serving request",
					"method", r.Method,
					"path", r.URL.Path,
					"err", rec,
				)
				Error(w, http.StatusInternalServerError, CategoryInternal, "Internal Server Error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
