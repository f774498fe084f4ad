// ABOUTME: Panic recovery helpers that make the cursor visible again before reporting
// ABOUTME: RestoreOnPanic exits the process; Recover turns a goroutine panic into an error

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

const showCursor = "\033[?25h"

// RestoreOnPanic should be deferred at the top of main. On panic it shows
// the cursor, prints the panic value and stack trace, then exits with
// code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = t.Write([]byte(showCursor))

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// Recover should be deferred at the top of background goroutines that run
// while the wait screen is active. A panic is stored in *errp instead of
// crashing the process so the owner can shut the screen down cleanly.
func Recover(t Terminal, errp *error) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = t.Write([]byte(showCursor))
	*errp = fmt.Errorf("goroutine panic: %v\n\n%s", r, debug.Stack())
}
