package core

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type Status int32

const (
	Idle Status = iota
	Running
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	}
	return "unknown"
}

// State is the worker liveness flag. The zero value is Idle.
type State struct {
	v atomic.Int32
}

// Acquire moves Idle to Running and reports whether this caller won the
// transition. Only the winner may run the worker loop.
func (s *State) Acquire() bool {
	return s.v.CompareAndSwap(int32(Idle), int32(Running))
}

func (s *State) Release() {
	s.v.Store(int32(Idle))
}

func (s *State) Load() Status {
	return Status(s.v.Load())
}

func (s *State) IsIdle() bool {
	return s.Load() == Idle
}

// Handle tracks one spawned worker goroutine.
type Handle struct {
	id        uuid.UUID
	startedAt time.Time
	done      chan struct{}
}

func NewHandle() *Handle {
	return &Handle{
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

func (h *Handle) ID() uuid.UUID {
	return h.id
}

func (h *Handle) StartedAt() time.Time {
	return h.startedAt
}

// Finished reports whether the worker goroutine has returned.
func (h *Handle) Finished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Done is closed once the worker goroutine has returned.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

func (h *Handle) finish() {
	close(h.done)
}
