package infrastructure

import (
	"context"
	"errors"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"sysvitals/internal/metrics/domain"
	"sysvitals/internal/shared/logger"
)

const (
	probeOSType   = "os type"
	probeRelease  = "os release"
	probeCPUCount = "cpu count"
	probeCPUSpeed = "cpu speed"
	probeLoad     = "load average"
	probeMemory   = "memory"
)

var (
	errNoCPU      = errors.New("no cpu reported")
	errNoCPUSpeed = errors.New("cpu speed not reported")
)

// HostCollector implements the domain Collector interface on the local host
type HostCollector struct {
	logger logger.Logger
}

// NewHostCollector creates a new host collector implementation
func NewHostCollector(logger logger.Logger) domain.Collector {
	return &HostCollector{logger: logger}
}

// OSType returns the kernel name as printed by `uname -s`
func (c *HostCollector) OSType(ctx context.Context) (string, error) {
	sysname, _, err := uname(ctx)
	if err != nil {
		return "", c.fail(probeOSType, err)
	}
	c.logger.Debug("Probed OS type", "value", sysname)
	return sysname, nil
}

// OSRelease returns the kernel release as printed by `uname -r`
func (c *HostCollector) OSRelease(ctx context.Context) (string, error) {
	_, release, err := uname(ctx)
	if err != nil {
		return "", c.fail(probeRelease, err)
	}
	c.logger.Debug("Probed OS release", "value", release)
	return release, nil
}

// CPUCount returns the number of logical CPUs
func (c *HostCollector) CPUCount(ctx context.Context) (uint32, error) {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return 0, c.fail(probeCPUCount, err)
	}
	if n <= 0 {
		return 0, c.fail(probeCPUCount, errNoCPU)
	}
	c.logger.Debug("Probed CPU count", "value", n)
	return uint32(n), nil
}

// CPUSpeed returns the clock speed of the first CPU in MHz
func (c *HostCollector) CPUSpeed(ctx context.Context) (uint64, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return 0, c.fail(probeCPUSpeed, err)
	}
	if len(infos) == 0 || infos[0].Mhz <= 0 {
		return 0, c.fail(probeCPUSpeed, errNoCPUSpeed)
	}
	speed := uint64(infos[0].Mhz)
	c.logger.Debug("Probed CPU speed", "mhz", speed, "model", infos[0].ModelName)
	return speed, nil
}

// LoadAverage returns the 1, 5 and 15 minute load averages
func (c *HostCollector) LoadAverage(ctx context.Context) (domain.LoadAverage, error) {
	// windows has no load average, gopsutil only emulates one from a background sampler
	if runtime.GOOS == "windows" {
		return domain.LoadAverage{}, c.fail(probeLoad, domain.ErrPlatformUnsupported)
	}

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return domain.LoadAverage{}, c.fail(probeLoad, err)
	}
	c.logger.Debug("Probed load average", "one", avg.Load1, "five", avg.Load5, "fifteen", avg.Load15)
	return domain.LoadAverage{One: avg.Load1, Five: avg.Load5, Fifteen: avg.Load15}, nil
}

// MemoryStats returns memory usage in kilobytes
func (c *HostCollector) MemoryStats(ctx context.Context) (domain.MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.MemoryStats{}, c.fail(probeMemory, err)
	}
	c.logger.Debug("Probed memory",
		"total", humanize.IBytes(vm.Total),
		"available", humanize.IBytes(vm.Available),
	)
	return memoryFromVirtual(vm), nil
}

func (c *HostCollector) fail(probe string, err error) error {
	c.logger.Debug("Probe failed", "probe", probe, "err", err)
	return domain.NewProbeError(probe, err)
}

// memoryFromVirtual converts gopsutil byte counts into kilobytes.
// On linux gopsutil folds SReclaimable into Cached; it is taken back out so
// cached matches the Cached line of /proc/meminfo. Sreclaimable is zero elsewhere.
func memoryFromVirtual(vm *mem.VirtualMemoryStat) domain.MemoryStats {
	cached := vm.Cached
	if vm.Sreclaimable <= cached {
		cached -= vm.Sreclaimable
	}
	return domain.MemoryStats{
		Total:   vm.Total / 1024,
		Free:    vm.Free / 1024,
		Avail:   vm.Available / 1024,
		Buffers: vm.Buffers / 1024,
		Cached:  cached / 1024,
	}
}
