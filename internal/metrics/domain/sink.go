package domain

import "context"

// Sink defines the interface for emitting report lines
type Sink interface {
	Emit(ctx context.Context, line string) error
}
