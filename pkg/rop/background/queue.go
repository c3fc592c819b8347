package background

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/ib-77/bgqueue/pkg/rop"
	"github.com/ib-77/bgqueue/pkg/rop/core"
	"github.com/ib-77/bgqueue/pkg/rop/solo"
	"github.com/sirupsen/logrus"
)

// Queue runs a transform over enqueued values on a single background
// goroutine. The goroutine is started on demand and exits once the input
// buffer is empty; the next enqueue starts a new one.
type Queue[In, Out any] struct {
	id     uuid.UUID
	engine func(In) rop.Result[Out]
	input  *core.Buffer[In]
	output *core.Buffer[rop.Result[Out]]
	state  core.State
	log    logrus.FieldLogger

	mu     sync.Mutex
	handle *core.Handle
}

var (
	_ rop.Producer[int] = (*Queue[int, int])(nil)
	_ rop.Consumer[int] = (*Queue[int, int])(nil)
	_ rop.Joiner        = (*Queue[int, int])(nil)
)

// New creates an idle queue for transform. No goroutine is started until the
// first value is enqueued. A panic inside transform is recorded as a failed
// result for that value.
func New[In, Out any](transform func(In) Out, opts ...core.Option) *Queue[In, Out] {
	if transform == nil {
		panic("background: nil transform")
	}
	return newQueue(solo.Wrap(transform), opts...)
}

// NewTry is New for transforms that can fail. A non-nil error becomes a failed
// result for that value.
func NewTry[In, Out any](transform func(In) (Out, error), opts ...core.Option) *Queue[In, Out] {
	if transform == nil {
		panic("background: nil transform")
	}
	return newQueue(solo.Lift(transform), opts...)
}

func newQueue[In, Out any](engine func(In) rop.Result[Out], opts ...core.Option) *Queue[In, Out] {
	o := core.NewOptions(opts...)
	id := uuid.New()

	return &Queue[In, Out]{
		id:     id,
		engine: engine,
		input:  core.NewBuffer[In](),
		output: core.NewBuffer[rop.Result[Out]](),
		log:    o.Logger.WithFields(logrus.Fields{"queue": id, "name": o.Name}),
	}
}

// ID identifies the queue in log fields.
func (q *Queue[In, Out]) ID() uuid.UUID {
	return q.id
}

// Enqueue appends value and starts a worker if none is running.
func (q *Queue[In, Out]) Enqueue(value In) {
	q.input.Push(value)
	q.spawnIfIdle()
}

// EnqueueMany appends values in order and starts a worker at most once.
func (q *Queue[In, Out]) EnqueueMany(values []In) {
	if len(values) == 0 {
		return
	}
	q.input.PushMany(values)
	q.spawnIfIdle()
}

// Pop returns the oldest finished result. It never waits for the worker.
func (q *Queue[In, Out]) Pop() (rop.Result[Out], bool) {
	return q.output.Pop()
}

// PopInto pops one result per slot of buf, in order, and returns how many
// slots were replaced. Slots past the available output keep their contents.
func (q *Queue[In, Out]) PopInto(buf []rop.Result[Out]) int {
	return q.output.PopInto(buf)
}

// Drain pops every result that is ready now.
func (q *Queue[In, Out]) Drain() []rop.Result[Out] {
	return q.output.Drain()
}

// Alive reports whether a worker currently owns the queue.
func (q *Queue[In, Out]) Alive() bool {
	return !q.state.IsIdle()
}

// Pending is the number of values not yet taken by a worker.
func (q *Queue[In, Out]) Pending() int {
	return q.input.Len()
}

// Ready is the number of results waiting to be popped.
func (q *Queue[In, Out]) Ready() int {
	return q.output.Len()
}

// Join blocks until every value enqueued before the call has a result in the
// output buffer and the worker has exited. It returns at once when the queue
// is idle with nothing outstanding. Any number of goroutines may Join at the
// same time. A worker that producers keep busy, or start again, before Join
// observes it stopped delays the return until the queue runs dry.
func (q *Queue[In, Out]) Join() {
	_ = q.JoinContext(context.Background())
}

// JoinContext is Join bounded by ctx. On ctx expiry it returns ctx.Err(); the
// worker keeps running.
func (q *Queue[In, Out]) JoinContext(ctx context.Context) error {
	target := q.input.Pushed()

	for {
		changed := q.output.Changed()
		h := q.current()
		done := q.output.Pushed() >= target

		var exited <-chan struct{}
		if h != nil && !h.Finished() {
			exited = h.Done()
		}

		if done && exited == nil {
			return nil
		}
		if done {
			changed = nil
		}

		select {
		case <-changed:
		case <-exited:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (q *Queue[In, Out]) spawnIfIdle() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.state.Acquire() {
		return
	}

	h := core.NewHandle()
	q.handle = h
	go core.Locomotive(q.input, q.output, q.engine, &q.state, h, q.log)
}

// current is the most recently spawned worker, nil before the first enqueue.
func (q *Queue[In, Out]) current() *core.Handle {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.handle
}
