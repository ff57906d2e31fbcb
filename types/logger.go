package types

// Logger defines methods for structured logging.
//
// Compatible with slog-style and zap.SugaredLogger-style loggers. All methods
// accept alternating key-value pairs for structured fields. The library never
// terminates the process, so the interface carries no Fatal level; callers
// that need one can wrap Error.
type Logger interface {
	// Debug logs a message at DebugLevel with the given key-value fields.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at InfoLevel with the given key-value fields.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at WarnLevel with the given key-value fields.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at ErrorLevel with the given key-value fields.
	Error(msg string, keysAndValues ...any)
}
