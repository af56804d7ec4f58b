package application

import (
	"fmt"
	"io"

	"sysvitals/internal/metrics/domain"
)

// Unknown is displayed in place of a metric which could not be collected
const Unknown = "unknown"

// NormalizeScalar returns the display form of a scalar metric, or Unknown if it failed.
// Failures are not reported anywhere: unsupported scalars are common and would only be noise.
func NormalizeScalar[T any](r domain.Result[T]) string {
	v, err := r.Value()
	if err != nil {
		return Unknown
	}
	return fmt.Sprint(v)
}

// NormalizeStructured returns the collected record, or nil if it failed.
// A failure writes exactly one diagnostic line with the error detail to diag.
func NormalizeStructured[T any](diag io.Writer, r domain.Result[T]) *T {
	v, err := r.Value()
	if err != nil {
		fmt.Fprintln(diag, err)
		return nil
	}
	return &v
}
