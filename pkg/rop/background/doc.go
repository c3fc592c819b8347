// Package background provides Queue, a fire-and-forget, collect-later worker
// queue.
//
// Producers call Enqueue or EnqueueMany from any goroutine. If no worker is
// running, the call starts one; at most one worker runs per queue. The
// worker applies the transform to each value in FIFO order, outside any
// lock, and appends a rop.Result to the output buffer. It exits once the
// input buffer is empty.
//
// Consumers call Pop or PopInto at any time, including while the worker is
// running; neither blocks. Join is the only blocking call: it returns after
// the worker has exited, at which point every value enqueued before the call
// has a result.
//
// A transform that panics or, with NewTry, returns an error produces a
// failed result for that value; the worker keeps going.
//
//	q := background.New(func(x int) float64 { return float64(x) })
//	q.EnqueueMany([]int{1, 2, 3})
//	q.Join()
//	for _, r := range q.Drain() {
//		fmt.Println(r.Result())
//	}
package background
