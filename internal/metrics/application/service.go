package application

import (
	"context"
	"fmt"
	"io"

	"sysvitals/internal/metrics/domain"
	"sysvitals/internal/shared/logger"
)

// Service collects host vitals once and emits the four report lines
type Service struct {
	logger    logger.Logger
	collector domain.Collector
	sink      domain.Sink
	diag      io.Writer
}

// NewService creates a new report service.
// Structured metric failures are described on diag, the report itself goes to sink.
func NewService(logger logger.Logger, collector domain.Collector, sink domain.Sink, diag io.Writer) *Service {
	return &Service{
		logger:    logger,
		collector: collector,
		sink:      sink,
		diag:      diag,
	}
}

// Run probes every metric category in order and emits OS, CPU, Load Avg and Mem lines.
// Collector failures never surface here; the only error is a failing sink.
func (s *Service) Run(ctx context.Context, unit domain.Unit) error {
	s.logger.Debug("Collecting host vitals", "unit", unit.String())

	osType := NormalizeScalar(probe(ctx, s.collector.OSType))
	osRelease := NormalizeScalar(probe(ctx, s.collector.OSRelease))
	if err := s.sink.Emit(ctx, FormatOS(osType, osRelease)); err != nil {
		return fmt.Errorf("failed to emit OS line: %w", err)
	}

	cores := NormalizeScalar(probe(ctx, s.collector.CPUCount))
	speed := NormalizeScalar(probe(ctx, s.collector.CPUSpeed))
	if err := s.sink.Emit(ctx, FormatCPU(cores, speed)); err != nil {
		return fmt.Errorf("failed to emit CPU line: %w", err)
	}

	// diagnostics are written before the line they explain
	load := NormalizeStructured(s.diag, probe(ctx, s.collector.LoadAverage))
	if err := s.sink.Emit(ctx, FormatLoadAverage(load)); err != nil {
		return fmt.Errorf("failed to emit load average line: %w", err)
	}

	mem := NormalizeStructured(s.diag, probe(ctx, s.collector.MemoryStats))
	if err := s.sink.Emit(ctx, FormatMemory(mem, unit)); err != nil {
		return fmt.Errorf("failed to emit memory line: %w", err)
	}

	s.logger.Debug("Host vitals reported", "load_collected", load != nil, "mem_collected", mem != nil)
	return nil
}

func probe[T any](ctx context.Context, fn func(context.Context) (T, error)) domain.Result[T] {
	v, err := fn(ctx)
	return domain.NewResultFrom(v, err)
}

// WriterSink implements the domain Sink interface on top of an io.Writer
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a sink writing one line per report entry
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes line followed by a newline
func (s *WriterSink) Emit(ctx context.Context, line string) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}
