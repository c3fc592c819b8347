package core

import (
	"time"

	"github.com/ib-77/bgqueue/pkg/rop"
	"github.com/sirupsen/logrus"
)

// Locomotive is the worker loop. The caller must have won state.Acquire.
//
// It pops inputs one at a time, runs engine on each outside any lock and
// pushes the outcome to output. When input is observed empty the state is
// released and input is checked once more: work that arrived in between is
// picked up by re-acquiring, or left to the producer that won the state.
func Locomotive[In, Out any](input *Buffer[In], output *Buffer[rop.Result[Out]],
	engine func(In) rop.Result[Out], state *State, handle *Handle, log logrus.FieldLogger) {

	owned := true
	processed := 0
	log = log.WithField("worker", handle.ID())

	defer func() {
		if owned {
			state.Release()
		}
		log.WithFields(logrus.Fields{
			"processed": processed,
			"elapsed":   time.Since(handle.StartedAt()),
		}).Debug("worker stopped")
		handle.finish()
	}()

	log.Debug("worker started")

	for {
		in, ok := input.Pop()
		if !ok {
			state.Release()
			owned = false

			if input.Len() == 0 || !state.Acquire() {
				return
			}
			owned = true
			log.Debug("worker reacquired after late enqueue")
			continue
		}

		res := engine(in)
		if res.Recovered() {
			log.WithError(res.Err()).Warn("transform panicked")
		}
		output.Push(res)
		processed++
	}
}
