// ABOUTME: Tests for VirtualTerminal verifying size reporting, failures, and output capture
// ABOUTME: Uses table-driven and parallel sub-tests

package terminal

import (
	"errors"
	"sync"
	"testing"
)

// compile-time checks: both implementations satisfy Terminal.
var (
	_ Terminal = (*VirtualTerminal)(nil)
	_ Terminal = (*ProcessTerminal)(nil)
)

func TestVirtualTerminal_Size(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{name: "standard 80x24", width: 80, height: 24, wantWidth: 80, wantHeight: 24},
		{name: "wide 200x50", width: 200, height: 50, wantWidth: 200, wantHeight: 50},
		{name: "zero dimensions", width: 0, height: 0, wantWidth: 0, wantHeight: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vt := NewVirtualTerminal(tt.width, tt.height)

			w, h, err := vt.Size()
			if err != nil {
				t.Fatalf("Size() unexpected error: %v", err)
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestVirtualTerminal_SetSize(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	vt.SetSize(120, 40)
	w, h, err := vt.Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if w != 120 || h != 40 {
		t.Errorf("Size() = (%d, %d), want (120, 40)", w, h)
	}
	if vt.SizeCalls() != 1 {
		t.Errorf("SizeCalls() = %d, want 1", vt.SizeCalls())
	}
}

func TestVirtualTerminal_SizeErr(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	boom := errors.New("not a tty")
	vt.SetSizeErr(boom)
	if _, _, err := vt.Size(); !errors.Is(err, boom) {
		t.Fatalf("Size() error = %v, want %v", err, boom)
	}

	vt.SetSizeErr(nil)
	if _, _, err := vt.Size(); err != nil {
		t.Fatalf("Size() after clearing error = %v", err)
	}
}

func TestVirtualTerminal_Write(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	if _, err := vt.Write([]byte("one")); err != nil {
		t.Fatal(err)
	}
	if _, err := vt.Write([]byte("two")); err != nil {
		t.Fatal(err)
	}
	if got := vt.Output(); got != "onetwo" {
		t.Errorf("Output() = %q, want %q", got, "onetwo")
	}

	vt.Reset()
	if got := vt.Output(); got != "" {
		t.Errorf("Output() after Reset = %q, want empty", got)
	}
}

func TestVirtualTerminal_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	vt := NewVirtualTerminal(80, 24)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			vt.SetSize(80+n, 24)
			_, _, _ = vt.Size()
			_, _ = vt.Write([]byte("x"))
		}(i)
	}
	wg.Wait()

	if got := len(vt.Output()); got != 10 {
		t.Errorf("Output() length = %d, want 10", got)
	}
	if vt.SizeCalls() != 10 {
		t.Errorf("SizeCalls() = %d, want 10", vt.SizeCalls())
	}
}
