// Package logger provides structured logging with configurable log levels.
// It wraps the standard log/slog package, choosing a JSON or text handler by
// environment, and offers a discarding logger for tests.
package logger
