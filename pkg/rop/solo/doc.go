// Package solo contains single-value, synchronous primitives that produce
// Result[T]. The background worker runs every queued item through them so a
// failing transform becomes a failed result instead of a dead worker.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Guard/GuardTry: run a transform and capture panics and errors
// - Wrap/Lift: adapt plain and error-returning transforms to one shape
// - Finally: reduce to a concrete value via success/error handlers
// - Values: split a batch of results into values and a joined error
package solo
