// Package logger configures the process-wide slog JSON logger and
// propagates request-scoped loggers through context values.
package logger
