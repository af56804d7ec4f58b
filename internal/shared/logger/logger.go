package logger

// Logger is the logging surface the metrics packages depend on.
// *infrastructure/logger.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
