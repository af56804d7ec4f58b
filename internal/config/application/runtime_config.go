package application

import (
	"context"
	"io"
	"os"
	"strings"

	"sysvitals/internal/infrastructure/logger"
	"sysvitals/internal/shared/validation"
)

const (
	defaultLogLevel    = "INFO"
	defaultLogFormat   = "text"
	defaultLogOutput   = "stderr"
	defaultDiagnostics = "stdout"
)

var _ validation.Validator = (*RuntimeConfig)(nil)

// RuntimeConfig holds all runtime configuration from environment variables and .env file.
// None of it changes the report itself.
type RuntimeConfig struct {
	// Logging Configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// Stream receiving the diagnostic line of a failed load average or memory probe
	Diagnostics string
}

// LoadRuntimeConfig loads configuration with precedence: env vars > .env file > defaults
func LoadRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		LogLevel:    getValue("SYSVITALS_LOG_LEVEL", defaultLogLevel),
		LogFormat:   getValue("SYSVITALS_LOG_FORMAT", defaultLogFormat),
		LogOutput:   getValue("SYSVITALS_LOG_OUTPUT", defaultLogOutput),
		Diagnostics: getValue("SYSVITALS_DIAGNOSTICS", defaultDiagnostics),
	}
}

// getValue returns the env var value or the default if it's unset
func getValue(envKey, defaultValue string) string {
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

func (c *RuntimeConfig) Valid(ctx context.Context) map[string]string {
	problems := make(map[string]string, 3)

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems["log_level"] = "must be one of DEBUG, INFO, WARN, ERROR"
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems["log_format"] = "must be text or json"
	}

	switch strings.ToLower(c.Diagnostics) {
	case "stdout", "stderr":
	default:
		problems["diagnostics"] = "must be stdout or stderr"
	}

	return problems
}

// Sanitize resets every invalid field to its default.
// The returned error describes what was reset, the config is usable either way.
func (c *RuntimeConfig) Sanitize(ctx context.Context) error {
	problems := c.Valid(ctx)
	if len(problems) == 0 {
		return nil
	}

	if _, ok := problems["log_level"]; ok {
		c.LogLevel = defaultLogLevel
	}
	if _, ok := problems["log_format"]; ok {
		c.LogFormat = defaultLogFormat
	}
	if _, ok := problems["diagnostics"]; ok {
		c.Diagnostics = defaultDiagnostics
	}
	return validation.NewValidationError(problems, "runtime")
}

// LoggerOptions returns the options to build the application logger with
func (c *RuntimeConfig) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		Output: c.LogOutput,
	}
}

// DiagnosticsWriter returns the stream diagnostics are written to
func (c *RuntimeConfig) DiagnosticsWriter() io.Writer {
	if strings.ToLower(c.Diagnostics) == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}
