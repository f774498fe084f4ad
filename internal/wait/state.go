// ABOUTME: Wait controller states and the outcome reported when a wait ends
// ABOUTME: Two live states (waiting, confirming) and two terminal states (success, canceled)

package wait

import "errors"

// State is a wait controller state.
type State int

const (
	// WaitingInitial polls for the first trigger and draws the idle animation.
	WaitingInitial State = iota
	// ConfirmingCancel runs the cancellation window after a trigger.
	ConfirmingCancel
	// DoneSuccess is terminal: the trigger stood.
	DoneSuccess
	// DoneCanceled is terminal: the wait was interrupted or aborted.
	DoneCanceled
)

func (s State) String() string {
	switch s {
	case WaitingInitial:
		return "waiting"
	case ConfirmingCancel:
		return "confirming"
	case DoneSuccess:
		return "success"
	case DoneCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Done reports whether s is terminal.
func (s State) Done() bool {
	return s == DoneSuccess || s == DoneCanceled
}

var (
	// ErrInterrupted reports a user or signal interrupt.
	ErrInterrupted = errors.New("wait interrupted")
	// ErrAborted reports that the quit latch was set by another component
	// before an event was confirmed.
	ErrAborted = errors.New("wait aborted")
)

// Outcome is the result of one wait.
type Outcome struct {
	State State
	Err   error
}

// Succeeded reports whether the wait ended in DoneSuccess.
func (o Outcome) Succeeded() bool {
	return o.State == DoneSuccess
}
