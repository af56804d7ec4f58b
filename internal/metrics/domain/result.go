package domain

import "errors"

// ErrNotCollected is returned by the zero Result
var ErrNotCollected = errors.New("value was not collected")

// Result holds either a collected value or the error which prevented collecting it
type Result[T any] struct {
	value T
	err   error
	set   bool
}

// NewResult returns a successful Result holding value
func NewResult[T any](value T) Result[T] {
	return Result[T]{value: value, set: true}
}

// NewErrorResult returns a failed Result
func NewErrorResult[T any](err error) Result[T] {
	if err == nil {
		err = ErrNotCollected
	}
	return Result[T]{err: err}
}

// NewResultFrom builds a Result from the usual (value, error) pair.
// The value is discarded when err is non-nil.
func NewResultFrom[T any](value T, err error) Result[T] {
	if err != nil {
		return NewErrorResult[T](err)
	}
	return NewResult(value)
}

// Value returns the collected value, or the error if the collection failed
func (r Result[T]) Value() (T, error) {
	if err := r.Error(); err != nil {
		var zero T
		return zero, err
	}
	return r.value, nil
}

// Error returns the collection error, nil on success
func (r Result[T]) Error() error {
	if r.err != nil {
		return r.err
	}
	if !r.set {
		return ErrNotCollected
	}
	return nil
}

