// ABOUTME: Tests for ProcessTerminal against a real pseudo-terminal from creack/pty
// ABOUTME: Verifies size changes are visible on the next Size call

//go:build unix

package terminal

import (
	"os"
	"testing"

	"github.com/creack/pty"
)

func TestProcessTerminal_SizeFollowsPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	pt := NewProcessTerminal(tty)
	if !pt.IsTerminal() {
		t.Fatal("pty slave should be a terminal")
	}

	sizes := []pty.Winsize{
		{Rows: 24, Cols: 80},
		{Rows: 50, Cols: 132},
		{Rows: 10, Cols: 20},
	}
	for _, ws := range sizes {
		if err := pty.Setsize(ptmx, &ws); err != nil {
			t.Fatalf("Setsize(%+v) error: %v", ws, err)
		}
		w, h, err := pt.Size()
		if err != nil {
			t.Fatalf("Size() unexpected error: %v", err)
		}
		if w != int(ws.Cols) || h != int(ws.Rows) {
			t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, ws.Cols, ws.Rows)
		}
	}
}

func TestProcessTerminal_WriteReachesPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	pt := NewProcessTerminal(tty)
	if _, err := pt.Write([]byte("ok")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	buf := make([]byte, 16)
	n, err := ptmx.Read(buf)
	if err != nil {
		t.Fatalf("reading pty master: %v", err)
	}
	if got := string(buf[:n]); got != "ok" {
		t.Errorf("pty master read %q, want %q", got, "ok")
	}
}

func TestProcessTerminal_NotATerminal(t *testing.T) {
	f, err := openDevNull()
	if err != nil {
		t.Skipf("no null device: %v", err)
	}
	defer f.Close()

	pt := NewProcessTerminal(f)
	if pt.IsTerminal() {
		t.Error("null device should not be a terminal")
	}
	if _, _, err := pt.Size(); err == nil {
		t.Error("Size() on a non-terminal should fail")
	}
}

func openDevNull() (*os.File, error) {
	return os.OpenFile(os.DevNull, os.O_RDWR, 0)
}
