// Package debounce collapses rapid repeated calls into a single delayed
// invocation carrying the most recent arguments.
package debounce

import (
	"sync"
	"time"
)

// Debouncer wraps a callback with a quiet period. Every Call cancels any
// pending invocation and schedules a new one; there is no queueing, so
// only the last value before the wait elapses is delivered.
type Debouncer[T any] struct {
	mu    sync.Mutex
	wait  time.Duration
	fn    func(T)
	timer *time.Timer
}

// New builds a debouncer around fn with the given wait.
func New[T any](wait time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{wait: wait, fn: fn}
}

// Call schedules fn(value) after the wait, superseding any pending call.
func (d *Debouncer[T]) Call(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		d.fn(value)
	})
}

// Stop cancels any pending invocation without running it.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
