package domain

import (
	"fmt"
	"runtime"
)

// ErrPlatformUnsupported means the metric can't be collected on the running platform
var ErrPlatformUnsupported = fmt.Errorf("not supported on %s/%s", runtime.GOOS, runtime.GOARCH)

// ProbeError is returned when a platform probe fails
type ProbeError struct {
	Probe string
	Err   error
}

// NewProbeError wraps err as a failure of the named probe
func NewProbeError(probe string, err error) *ProbeError {
	return &ProbeError{Probe: probe, Err: err}
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s probe failed: %v", e.Probe, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}
