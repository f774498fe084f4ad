// ABOUTME: Defines the Terminal surface used by the wait screen: size queries and raw output
// ABOUTME: Implementations target a real TTY (ProcessTerminal) or an in-memory fake (VirtualTerminal)

package terminal

// Terminal reports the current geometry of the display and accepts raw
// output. Size is queried on every frame, so implementations must be cheap
// and safe for concurrent use.
type Terminal interface {
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
}

// Fallback dimensions used when no size has ever been reported.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)
