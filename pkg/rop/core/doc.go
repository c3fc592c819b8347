// Package core contains the plumbing behind the background queue: the
// mutex-guarded FIFO Buffer, the liveness State and worker Handle, options,
// and the Locomotive loop that drains one buffer into another. It does not
// define the public queue API; see packages background and lite.
package core
