// Package logger provides the application-wide structured logger.
package logger

// Logger defines the logging interface. Messages may be followed by
// alternating key/value pairs which are emitted as structured attributes.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	Fatal(msg string, keysAndValues ...any)
	Panic(msg string, keysAndValues ...any)
}
