// ABOUTME: ProcessTerminal implements Terminal on an *os.File using golang.org/x/term
// ABOUTME: Size is read from the kernel on every call so resizes show up on the next frame

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by an open file, usually
// os.Stderr so stdout stays free for scripting.
type ProcessTerminal struct {
	f *os.File
}

// NewProcessTerminal returns a ProcessTerminal writing to f.
func NewProcessTerminal(f *os.File) *ProcessTerminal {
	return &ProcessTerminal{f: f}
}

// File returns the underlying file.
func (t *ProcessTerminal) File() *os.File {
	return t.f
}

// IsTerminal reports whether the file is attached to a TTY.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.f.Fd()))
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.f.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.f.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
