// Package logging defines the structured-logging interface used across
// linkdash and its two backends: SlogLogger for plain text and ZerologLogger
// for JSON or console output. New picks one from config values; Discard is
// for tests and optional dependencies.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are key/value pairs:
//
//	log.Info(ctx, "signed in", "user", name, "role", role)
//
// Values under token, auth_token, password and authorization keys are
// replaced with Redacted by both backends.
type Logger interface {
	// Debug: request traces and swallowed session parse errors.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn: a failed fetch or an unreadable store; the client keeps going.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
