// Package logger builds configured slog.Logger instances.
//
// It provides a small factory over log/slog with JSON and text output formats,
// environment presets (development uses readable text at debug level,
// production uses JSON at info level), static attributes attached to every
// record, and context extractors that inject request-scoped values such as
// request IDs at log time.
package logger
