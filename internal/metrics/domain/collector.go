package domain

import "context"

// Collector defines the interface for reading host vitals
// This interface abstracts platform calls and system-level operations from the domain layer
type Collector interface {
	// OSType returns the operating system name, e.g. "Linux"
	OSType(ctx context.Context) (string, error)
	// OSRelease returns the kernel release, e.g. "5.15.0"
	OSRelease(ctx context.Context) (string, error)
	// CPUCount returns the number of logical CPUs
	CPUCount(ctx context.Context) (uint32, error)
	// CPUSpeed returns the clock speed of the first CPU in MHz
	CPUSpeed(ctx context.Context) (uint64, error)
	// LoadAverage returns the 1, 5 and 15 minute load averages
	LoadAverage(ctx context.Context) (LoadAverage, error)
	// MemoryStats returns memory usage in kilobytes
	MemoryStats(ctx context.Context) (MemoryStats, error)
}
