// Package logger provides structured logging for the application.
//
// It configures a log/slog JSON handler from the server configuration and
// carries request-scoped loggers and request IDs through context.Context.
package logger
