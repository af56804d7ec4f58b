package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger struct {
	*slog.Logger
}

// Options selects the level, format and destination of a Logger
type Options struct {
	Level  string
	Format string
	Output string
}

// DefaultLogger creates a logger using slog.Default()
func DefaultLogger() *Logger {
	return &Logger{
		Logger: slog.Default(),
	}
}

// NewLoggerWithOptions creates a logger from resolved runtime options.
// Empty fields fall back to INFO level, text format and stderr output.
func NewLoggerWithOptions(opts Options) *Logger {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = "text"
	}

	// stdout carries the report
	output := opts.Output
	if output == "" {
		output = "stderr"
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLogLevel(opts.Level),
	}

	writer := openOutput(output)
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

func openOutput(output string) io.Writer {
	switch output {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	default:
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stderr if file can't be opened
			return os.Stderr
		}
		return file
	}
}

// parseLogLevel parses log level from string
func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefaultLogger sets the logger as the default slog logger
func SetDefaultLogger(l *Logger) {
	slog.SetDefault(l.Logger)
}
