// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package: JSON output for
// deployed environments and colored text output (via tint) for local
// development. Request-scoped loggers travel through context.Context so that
// every log line written while serving a request carries its trace ID.
package logger
