package lite

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/bgqueue/pkg/rop"
	"github.com/ib-77/bgqueue/pkg/rop/background"
	"github.com/ib-77/bgqueue/pkg/rop/core"
)

// Queue hands out plain values instead of results. Failed outcomes are
// skipped on pop and collected for Err.
type Queue[In, Out any] struct {
	q *background.Queue[In, Out]

	mu   sync.Mutex
	errs []error
}

func New[In, Out any](transform func(In) Out, opts ...core.Option) *Queue[In, Out] {
	return &Queue[In, Out]{q: background.New(transform, opts...)}
}

func NewTry[In, Out any](transform func(In) (Out, error), opts ...core.Option) *Queue[In, Out] {
	return &Queue[In, Out]{q: background.NewTry(transform, opts...)}
}

func (l *Queue[In, Out]) Enqueue(value In) {
	l.q.Enqueue(value)
}

func (l *Queue[In, Out]) EnqueueMany(values []In) {
	l.q.EnqueueMany(values)
}

// Pop returns the next successful value, skipping and recording failures.
// It reports false once no result is ready.
func (l *Queue[In, Out]) Pop() (Out, bool) {
	for {
		r, ok := l.q.Pop()
		if !ok {
			var zero Out
			return zero, false
		}
		if r.IsSuccess() {
			return r.Result(), true
		}
		l.record(r)
	}
}

// PopInto makes one pop per slot of buf. A slot is replaced only when its
// pop yields a successful value; empty output or a failed outcome leaves it
// as it was. It returns the number of slots replaced.
func (l *Queue[In, Out]) PopInto(buf []Out) int {
	n := 0
	for i := range buf {
		r, ok := l.q.Pop()
		if !ok {
			break
		}
		if !r.IsSuccess() {
			l.record(r)
			continue
		}
		buf[i] = r.Result()
		n++
	}
	return n
}

func (l *Queue[In, Out]) Join() {
	l.q.Join()
}

func (l *Queue[In, Out]) JoinContext(ctx context.Context) error {
	return l.q.JoinContext(ctx)
}

func (l *Queue[In, Out]) Alive() bool {
	return l.q.Alive()
}

// Err joins the failures skipped by Pop and PopInto so far.
func (l *Queue[In, Out]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return errors.Join(l.errs...)
}

// Unwrap exposes the underlying result queue.
func (l *Queue[In, Out]) Unwrap() *background.Queue[In, Out] {
	return l.q
}

func (l *Queue[In, Out]) record(r rop.Result[Out]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, rop.GetErrors(r.Err())...)
}
