// ABOUTME: Bounce is the idle animation cursor: a two-cell marker sweeping back and forth
// ABOUTME: Position stays within [0, length-2] and reverses exactly at both ends

package wait

// Bounce carries the idle animation phase across frames.
// The zero value starts at column 0 moving right.
type Bounce struct {
	Position  int
	Direction int
}

// Step returns the position to draw for a bar of the given length and
// advances the animation. When the bar shrinks the position is clamped.
func (b *Bounce) Step(length int) int {
	if b.Direction == 0 {
		b.Direction = 1
	}

	limit := length - 2
	if limit <= 0 {
		b.Position = 0
		return 0
	}
	if b.Position > limit {
		b.Position = limit
	}
	if b.Position < 0 {
		b.Position = 0
	}

	pos := b.Position
	next := pos + b.Direction
	if next > limit || next < 0 {
		b.Direction = -b.Direction
		next = pos + b.Direction
	}
	b.Position = next
	return pos
}
