package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	configapp "sysvitals/internal/config/application"
	"sysvitals/internal/infrastructure/logger"
	metricsapp "sysvitals/internal/metrics/application"
	"sysvitals/internal/metrics/domain"
	metricsinfra "sysvitals/internal/metrics/infrastructure"
)

var version = "dev"

// newApp builds the CLI. Flag parsing is disabled: every argument is a free-form
// token and only "mb" and "gb" mean anything.
func newApp(appLogger *logger.Logger, collector domain.Collector, out, diag io.Writer) *cli.App {
	return &cli.App{
		Name:            "sysvitals",
		Usage:           "print OS, CPU, load average and memory of this host",
		Version:         version,
		HideHelp:        true,
		HideVersion:     true,
		SkipFlagParsing: true,
		Writer:          out,
		ErrWriter:       os.Stderr,
		Action: func(c *cli.Context) error {
			unit := domain.ParseUnit(c.Args().Slice())
			appLogger.Debug("Unit selected", "unit", unit.String(), "args", c.Args().Len())

			service := metricsapp.NewService(appLogger, collector, metricsapp.NewWriterSink(out), diag)
			return service.Run(c.Context, unit)
		},
	}
}

func run(args []string) error {
	bootstrap := logger.DefaultLogger()
	configapp.LoadEnvFile(bootstrap, "")

	cfg := configapp.LoadRuntimeConfig()
	cfgErr := cfg.Sanitize(context.Background())

	appLogger := logger.NewLoggerWithOptions(cfg.LoggerOptions())
	logger.SetDefaultLogger(appLogger)
	if cfgErr != nil {
		appLogger.Warn("Ignoring invalid configuration", "err", cfgErr)
	}

	collector := metricsinfra.NewHostCollector(appLogger)
	app := newApp(appLogger, collector, os.Stdout, cfg.DiagnosticsWriter())
	if err := app.Run(args); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args); err != nil {
		// slog.Default() is the configured logger once run() got past SetDefaultLogger
		logger.DefaultLogger().Error("Application error", "err", err)
		os.Exit(1)
	}
}
