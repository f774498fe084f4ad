// ABOUTME: Quit is a one-shot cancellation latch observable by polling or by channel
// ABOUTME: Set is idempotent; once set the latch never resets

package trigger

import "sync"

// Quit is a write-once latch. Either side of a wait session may set it
// and both must stop promptly once it is set.
type Quit struct {
	once sync.Once
	done chan struct{}
}

// NewQuit returns an unset latch.
func NewQuit() *Quit {
	return &Quit{done: make(chan struct{})}
}

// Set closes the latch. Calling Set more than once is a no-op.
func (q *Quit) Set() {
	q.once.Do(func() { close(q.done) })
}

// IsSet reports whether Set has been called.
func (q *Quit) IsSet() bool {
	select {
	case <-q.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the latch is set.
func (q *Quit) Done() <-chan struct{} {
	return q.done
}
