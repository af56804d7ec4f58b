package application

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"sysvitals/internal/metrics/domain"
)

// FormatOS renders the OS line
func FormatOS(osType, release string) string {
	return fmt.Sprintf("OS: %s %s", osType, release)
}

// FormatCPU renders the CPU line
func FormatCPU(cores, speed string) string {
	return fmt.Sprintf("CPU: %s Cores, %s MHz", cores, speed)
}

// FormatLoadAverage renders the Load Avg line, load is nil when it could not be collected
func FormatLoadAverage(load *domain.LoadAverage) string {
	if load == nil {
		return "Load Avg: " + Unknown
	}
	return fmt.Sprintf("Load Avg: %s %s %s",
		formatDecimal(load.One),
		formatDecimal(load.Five),
		formatDecimal(load.Fifteen),
	)
}

// FormatMemory renders the Mem line in the given unit, mem is nil when it could not be collected
func FormatMemory(mem *domain.MemoryStats, unit domain.Unit) string {
	if mem == nil {
		return "Mem: " + Unknown
	}

	fields := []struct {
		name  string
		value uint64
	}{
		{"total", mem.Total},
		{"free", mem.Free},
		{"avail", mem.Avail},
		{"buffers", mem.Buffers},
		{"cached", mem.Cached},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s %s %s", f.name, formatAmount(f.value, unit), unit.Label()))
	}
	return "Mem: " + strings.Join(parts, ", ")
}

// formatAmount prints raw kilobytes for UnitKB and two decimals otherwise
func formatAmount(kb uint64, unit domain.Unit) string {
	if unit == domain.UnitKB {
		return strconv.FormatUint(kb, 10)
	}
	v := float64(kb) / unit.Divisor()
	// halves round away from zero, 0.125 prints as 0.13
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

// formatDecimal prints the shortest representation which parses back to v, never in exponent form
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
