package core

import "sync"

// Buffer is an unbounded FIFO guarded by its own mutex.
type Buffer[T any] struct {
	mu     sync.Mutex
	items  []T
	pushed uint64
	notify chan struct{}
}

func NewBuffer[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

func (b *Buffer[T]) Push(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, v)
	b.pushed++
	b.wake()
}

// PushMany appends values in order under a single lock acquisition.
func (b *Buffer[T]) PushMany(values []T) {
	if len(values) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, values...)
	b.pushed += uint64(len(values))
	b.wake()
}

func (b *Buffer[T]) Pop() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pop()
}

// PopInto pops one value per slot of buf, in order. Slots left over once the
// buffer runs empty keep their contents. It returns the number of slots
// replaced.
func (b *Buffer[T]) PopInto(buf []T) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for i := range buf {
		v, ok := b.pop()
		if !ok {
			break
		}
		buf[i] = v
		n++
	}
	return n
}

// Drain removes and returns everything currently buffered.
func (b *Buffer[T]) Drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]T, len(b.items))
	copy(out, b.items)
	b.items = nil
	return out
}

func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Pushed is the number of values ever pushed. Because the buffer is FIFO,
// the first Pushed() values popped are exactly the ones pushed so far.
func (b *Buffer[T]) Pushed() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pushed
}

// Changed returns a channel that is closed by the next push.
func (b *Buffer[T]) Changed() <-chan struct{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.notify == nil {
		b.notify = make(chan struct{})
	}
	return b.notify
}

func (b *Buffer[T]) wake() {
	if b.notify != nil {
		close(b.notify)
		b.notify = nil
	}
}

func (b *Buffer[T]) pop() (T, bool) {
	var zero T
	if len(b.items) == 0 {
		return zero, false
	}

	v := b.items[0]
	b.items[0] = zero
	if len(b.items) == 1 {
		b.items = b.items[:0]
	} else {
		b.items = b.items[1:]
	}
	return v, true
}
