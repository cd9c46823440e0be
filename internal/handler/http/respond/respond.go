// Package respond writes JSON responses and keeps internal error detail
// out of them. Messages from our own validation layer pass through; anything
// else is masked and logged with credentials scrubbed.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
)

// JSON sends v with the given status. An encode failure after the header
// went out can only be logged.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error sends the error text verbatim. Use SafeError unless the message is
// known to be written for clients.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// Markers of messages written by our validation layer. Anything else could
// carry driver or SDK detail and is masked.
var safeMarkers = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too long",
	"too short",
}

func clientSafe(code int, msg string) bool {
	if code >= 500 {
		return false
	}
	lower := strings.ToLower(msg)
	for _, marker := range safeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// SafeError sends err if its message is client-safe; otherwise it sends a
// generic body and logs the real error. 5xx is never considered safe.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	if msg := err.Error(); clientSafe(code, msg) {
		JSON(w, code, map[string]string{"error": msg})
		return
	}
	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

// AppError pairs a message written for clients with the internal error it
// stands in for.
type AppError struct {
	UserMsg string
	Err     error
	Code    int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

func (e *AppError) Unwrap() error { return e.Err }

func NewAppError(code int, userMsg string, err error) *AppError {
	return &AppError{Code: code, UserMsg: userMsg, Err: err}
}

// AppOrSafeError sends an AppError's user message under its own status,
// logging the wrapped error; any other error goes through SafeError.
func AppOrSafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		SafeError(w, code, err)
		return
	}
	if appErr.Err != nil {
		slog.Default().Error("application error",
			slog.String("status", http.StatusText(appErr.Code)),
			slog.Int("code", appErr.Code),
			slog.String("user_message", appErr.UserMsg),
			slog.Any("error", SanitizeError(appErr.Err)))
	}
	JSON(w, appErr.Code, map[string]string{"error": appErr.UserMsg})
}
