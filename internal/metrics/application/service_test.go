package application

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sysvitals/internal/infrastructure/logger"
	"sysvitals/internal/metrics/domain"
)

// mockCollector is a mock implementation of domain.Collector
type mockCollector struct {
	osType    string
	osRelease string
	cpuCount  uint32
	cpuSpeed  uint64
	load      domain.LoadAverage
	mem       domain.MemoryStats

	osTypeErr    error
	osReleaseErr error
	cpuCountErr  error
	cpuSpeedErr  error
	loadErr      error
	memErr       error

	calls []string
}

func (m *mockCollector) OSType(ctx context.Context) (string, error) {
	m.calls = append(m.calls, "os_type")
	return m.osType, m.osTypeErr
}

func (m *mockCollector) OSRelease(ctx context.Context) (string, error) {
	m.calls = append(m.calls, "os_release")
	return m.osRelease, m.osReleaseErr
}

func (m *mockCollector) CPUCount(ctx context.Context) (uint32, error) {
	m.calls = append(m.calls, "cpu_count")
	return m.cpuCount, m.cpuCountErr
}

func (m *mockCollector) CPUSpeed(ctx context.Context) (uint64, error) {
	m.calls = append(m.calls, "cpu_speed")
	return m.cpuSpeed, m.cpuSpeedErr
}

func (m *mockCollector) LoadAverage(ctx context.Context) (domain.LoadAverage, error) {
	m.calls = append(m.calls, "load")
	return m.load, m.loadErr
}

func (m *mockCollector) MemoryStats(ctx context.Context) (domain.MemoryStats, error) {
	m.calls = append(m.calls, "mem")
	return m.mem, m.memErr
}

// failingSink rejects every line after the first n
type failingSink struct {
	n     int
	lines []string
}

func (s *failingSink) Emit(ctx context.Context, line string) error {
	if len(s.lines) >= s.n {
		return errors.New("broken pipe")
	}
	s.lines = append(s.lines, line)
	return nil
}

func healthyCollector() *mockCollector {
	return &mockCollector{
		osType:    "Linux",
		osRelease: "5.15.0",
		cpuCount:  8,
		cpuSpeed:  3600,
		load:      domain.LoadAverage{One: 0.5, Five: 0.75, Fifteen: 1},
		mem:       sampleMemory,
	}
}

func runService(t *testing.T, collector domain.Collector, unit domain.Unit) string {
	t.Helper()

	var out bytes.Buffer
	service := NewService(logger.DefaultLogger(), collector, NewWriterSink(&out), &out)
	require.NoError(t, service.Run(context.Background(), unit))
	return out.String()
}

func TestService_Run_EndToEnd(t *testing.T) {
	collector := healthyCollector()
	collector.loadErr = domain.NewProbeError("load average", domain.ErrPlatformUnsupported)

	out := runService(t, collector, domain.ParseUnit(nil))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "OS: Linux 5.15.0", lines[0])
	require.Equal(t, "CPU: 8 Cores, 3600 MHz", lines[1])
	require.Contains(t, lines[2], "load average probe failed")
	require.Equal(t, "Load Avg: unknown", lines[3])
	require.Equal(t, "Mem: total 2097152 KB, free 1048576 KB, avail 1572864 KB, buffers 65536 KB, cached 131072 KB", lines[4])
	require.True(t, strings.HasSuffix(out, "\n"))
}

func TestService_Run_AllHealthy(t *testing.T) {
	collector := healthyCollector()

	out := runService(t, collector, domain.UnitMB)

	require.Equal(t, strings.Join([]string{
		"OS: Linux 5.15.0",
		"CPU: 8 Cores, 3600 MHz",
		"Load Avg: 0.5 0.75 1",
		"Mem: total 2048.00 MB, free 1024.00 MB, avail 1536.00 MB, buffers 64.00 MB, cached 128.00 MB",
	}, "\n")+"\n", out)
	require.Equal(t, []string{"os_type", "os_release", "cpu_count", "cpu_speed", "load", "mem"}, collector.calls)
}

func TestService_Run_ScalarFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *mockCollector)
		wantOS  string
		wantCPU string
	}{
		{
			name:    "os type",
			mutate:  func(m *mockCollector) { m.osTypeErr = domain.ErrPlatformUnsupported },
			wantOS:  "OS: unknown 5.15.0",
			wantCPU: "CPU: 8 Cores, 3600 MHz",
		},
		{
			name:    "os release",
			mutate:  func(m *mockCollector) { m.osReleaseErr = errors.New("uname failed") },
			wantOS:  "OS: Linux unknown",
			wantCPU: "CPU: 8 Cores, 3600 MHz",
		},
		{
			name:    "cpu count",
			mutate:  func(m *mockCollector) { m.cpuCountErr = errors.New("no cpus") },
			wantOS:  "OS: Linux 5.15.0",
			wantCPU: "CPU: unknown Cores, 3600 MHz",
		},
		{
			name: "every scalar",
			mutate: func(m *mockCollector) {
				m.osTypeErr = domain.ErrPlatformUnsupported
				m.osReleaseErr = domain.ErrPlatformUnsupported
				m.cpuCountErr = domain.ErrPlatformUnsupported
				m.cpuSpeedErr = domain.ErrPlatformUnsupported
			},
			wantOS:  "OS: unknown unknown",
			wantCPU: "CPU: unknown Cores, unknown MHz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := healthyCollector()
			tt.mutate(collector)

			out := runService(t, collector, domain.UnitKB)

			// scalar failures never produce diagnostics
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, 4)
			require.Equal(t, tt.wantOS, lines[0])
			require.Equal(t, tt.wantCPU, lines[1])
			require.Equal(t, "Load Avg: 0.5 0.75 1", lines[2])
		})
	}
}

func TestService_Run_StructuredFailures(t *testing.T) {
	collector := healthyCollector()
	collector.loadErr = errors.New("load exploded")
	collector.memErr = errors.New("meminfo exploded")

	var report, diag bytes.Buffer
	service := NewService(logger.DefaultLogger(), collector, NewWriterSink(&report), &diag)
	require.NoError(t, service.Run(context.Background(), domain.UnitGB))

	require.Equal(t, "OS: Linux 5.15.0\nCPU: 8 Cores, 3600 MHz\nLoad Avg: unknown\nMem: unknown\n", report.String())
	require.Equal(t, "load exploded\nmeminfo exploded\n", diag.String())
}

func TestService_Run_Idempotent(t *testing.T) {
	collector := healthyCollector()
	collector.memErr = domain.ErrPlatformUnsupported

	first := runService(t, collector, domain.UnitGB)
	second := runService(t, collector, domain.UnitGB)

	require.Equal(t, first, second)
}

func TestService_Run_SinkError(t *testing.T) {
	sink := &failingSink{n: 2}
	service := NewService(logger.DefaultLogger(), healthyCollector(), sink, &bytes.Buffer{})

	err := service.Run(context.Background(), domain.UnitKB)

	require.Error(t, err)
	require.Contains(t, err.Error(), "load average line")
	require.Len(t, sink.lines, 2)
}
