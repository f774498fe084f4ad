// ABOUTME: Event is the idle/triggered cell shared between listener and controller
// ABOUTME: Single writer toggles it; readers poll it lock-free via atomic loads

package trigger

import "sync/atomic"

// State is the observable value of an Event.
type State uint32

const (
	Idle State = iota
	Triggered
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Triggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// Event is a two-valued flag. The zero value is Idle and ready to use.
type Event struct {
	state   atomic.Uint32
	toggles atomic.Uint64
}

// NewEvent returns an Event in the Idle state.
func NewEvent() *Event {
	return &Event{}
}

// Toggle flips Idle to Triggered or Triggered to Idle and returns the
// resulting state. A second matching event therefore cancels the first.
func (e *Event) Toggle() State {
	for {
		old := e.state.Load()
		next := uint32(Triggered)
		if State(old) == Triggered {
			next = uint32(Idle)
		}
		if e.state.CompareAndSwap(old, next) {
			e.toggles.Add(1)
			return State(next)
		}
	}
}

// Load returns the current state.
func (e *Event) Load() State {
	return State(e.state.Load())
}

// Triggered reports whether the event is currently Triggered.
func (e *Event) Triggered() bool {
	return e.Load() == Triggered
}

// Toggles returns how many times the event has flipped.
func (e *Event) Toggles() uint64 {
	return e.toggles.Load()
}
