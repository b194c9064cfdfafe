package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pharmabolt/pharmabolt-api/internal/redact"
)

// Envelope is the {error, data} wrapper used for all successful
// resource responses.
type Envelope struct {
	Error any `json:"error"`
	Data  any `json:"data"`
}

// ErrorDetail carries the message (and optional details) of a failed
// request, nested under the "error" key by ErrorResponse.
type ErrorDetail struct {
	Message string `json:"message"`
	Details any    `json:"details"`
}

// ErrorResponse is the body produced by the centralized error
// responder: {"error":{"message":...,"details":null}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AuthErrorResponse is the flat {"error":"..."} body used by the
// authentication and authorization middleware.
type AuthErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every schema violation found in a
// request body.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope {"error":null,"data":...}.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	RespondWithJSON(w, r, status, Envelope{Error: nil, Data: data})
}

// RespondWithError writes the centralized error body with the given
// status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Error: ErrorDetail{Message: message}})
}

// RespondWithAuthError writes the flat {"error":"..."} body used by the
// auth middleware chain.
func RespondWithAuthError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending auth error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, AuthErrorResponse{Error: message})
}

// RespondWithValidationErrors writes a 400 carrying every validation
// violation found in the request body.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, messages []string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending validation error response",
		"violations", len(messages),
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, http.StatusBadRequest, ValidationErrorResponse{Errors: messages})
}

// RespondWithErrorAndLog writes the centralized error body and also
// logs the underlying error. The client sees only the safe message;
// the log line carries the redacted error detail and trace ID.
//
// Log level strategy: 5xx at ERROR, everything else at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Error: ErrorDetail{Message: userMessage}})
}
