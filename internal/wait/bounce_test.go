// ABOUTME: Tests for the idle animation cursor bounds and reversal points
// ABOUTME: Walks several full sweeps and checks clamping when the bar shrinks

package wait

import "testing"

func TestBounce_Sequence20(t *testing.T) {
	t.Parallel()

	var b Bounce
	var got []int
	for range 40 {
		got = append(got, b.Step(20))
	}

	// 0..18, then 17..0, then 1...
	want := make([]int, 0, 40)
	for i := 0; i <= 18; i++ {
		want = append(want, i)
	}
	for i := 17; i >= 0; i-- {
		want = append(want, i)
	}
	want = append(want, 1, 2, 3)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d = %d, want %d (sequence %v)", i, got[i], want[i], got)
		}
	}
}

func TestBounce_StaysInBounds(t *testing.T) {
	t.Parallel()

	for _, length := range []int{3, 4, 10, 20, 81} {
		var b Bounce
		prev := -1
		for i := range 5 * length {
			pos := b.Step(length)
			if pos < 0 || pos > length-2 {
				t.Fatalf("length %d step %d: position %d out of [0, %d]", length, i, pos, length-2)
			}
			if prev >= 0 && abs(pos-prev) != 1 {
				t.Fatalf("length %d step %d: jumped from %d to %d", length, i, prev, pos)
			}
			prev = pos
		}
	}
}

func TestBounce_TinyBars(t *testing.T) {
	t.Parallel()

	for _, length := range []int{-1, 0, 1, 2} {
		var b Bounce
		for range 5 {
			if pos := b.Step(length); pos != 0 {
				t.Errorf("Step(%d) = %d, want 0", length, pos)
			}
		}
	}
}

func TestBounce_ClampsOnShrink(t *testing.T) {
	t.Parallel()

	b := Bounce{Position: 50, Direction: 1}
	pos := b.Step(20)
	if pos != 18 {
		t.Fatalf("Step after shrink = %d, want 18", pos)
	}
	if next := b.Step(20); next != 17 {
		t.Errorf("next Step = %d, want 17 (reversed)", next)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
