package log

var _ Logger = NoopLogger{}

// NoopLogger discards all log messages. It is the Calculator default.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(msg string, fields ...Field) {}
func (NoopLogger) Info(msg string, fields ...Field) {}
func (NoopLogger) Warn(msg string, fields ...Field) {}
func (NoopLogger) Error(msg string, fields ...Field) {}
