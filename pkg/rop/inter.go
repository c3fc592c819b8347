package rop

import (
	"context"
	"time"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// Producer accepts work for a background worker.
type Producer[In any] interface {
	// Enqueue appends one value and starts a worker if none is running
	Enqueue(value In)
	// EnqueueMany appends values in order and checks for a worker once
	EnqueueMany(values []In)
}

// Consumer hands out finished outcomes without blocking.
type Consumer[Out any] interface {
	// Pop returns the oldest outcome, false when nothing is ready
	Pop() (Result[Out], bool)
	// PopInto fills buf slot by slot and returns how many slots were replaced
	PopInto(buf []Result[Out]) int
}

// Joiner waits for the background worker.
type Joiner interface {
	Join()
	JoinContext(ctx context.Context) error
	Alive() bool
}
