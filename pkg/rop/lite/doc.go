// Package lite wraps background.Queue for callers that want plain values
// back instead of rop.Result.
//
// Pop and PopInto return only successful values. Failures are not lost:
// Err reports them, joined, until the queue is discarded.
package lite
