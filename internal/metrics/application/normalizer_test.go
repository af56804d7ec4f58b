package application

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sysvitals/internal/metrics/domain"
)

func TestNormalizeScalar(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"string value", NormalizeScalar(domain.NewResult("Linux")), "Linux"},
		{"uint32 value", NormalizeScalar(domain.NewResult(uint32(8))), "8"},
		{"uint64 value", NormalizeScalar(domain.NewResult(uint64(3600))), "3600"},
		{"failed string", NormalizeScalar(domain.NewErrorResult[string](domain.ErrPlatformUnsupported)), "unknown"},
		{"failed integer", NormalizeScalar(domain.NewErrorResult[uint64](errors.New("boom"))), "unknown"},
		{"never collected", NormalizeScalar(domain.Result[uint32]{}), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.got)
		})
	}
}

func TestNormalizeStructured_Success(t *testing.T) {
	var diag bytes.Buffer
	load := domain.LoadAverage{One: 0.5, Five: 1, Fifteen: 1.25}

	got := NormalizeStructured(&diag, domain.NewResult(load))

	require.NotNil(t, got)
	require.Equal(t, load, *got)
	require.Empty(t, diag.String())
}

func TestNormalizeStructured_Failure(t *testing.T) {
	var diag bytes.Buffer
	err := domain.NewProbeError("memory", errors.New("open /proc/meminfo: permission denied"))

	got := NormalizeStructured(&diag, domain.NewErrorResult[domain.MemoryStats](err))

	require.Nil(t, got)
	lines := strings.Split(strings.TrimSuffix(diag.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "permission denied")
	require.Contains(t, lines[0], "memory")
}
