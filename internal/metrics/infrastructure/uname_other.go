//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package infrastructure

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"

	"sysvitals/internal/metrics/domain"
)

func uname(ctx context.Context) (sysname, release string, err error) {
	if runtime.GOOS != "windows" {
		return "", "", domain.ErrPlatformUnsupported
	}

	release, err = host.KernelVersionWithContext(ctx)
	if err != nil {
		return "", "", err
	}
	return "Windows", release, nil
}
