// ABOUTME: Wait controller as a Bubble Tea model polling the shared trigger on a fixed tick
// ABOUTME: Drives waiting -> confirming -> success, resumes waiting on cancel, quits on interrupt

package wait

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/particle-wait/internal/trigger"
	"github.com/mauromedda/particle-wait/pkg/tui/terminal"
	"github.com/mauromedda/particle-wait/pkg/tui/theme"
	"github.com/mauromedda/particle-wait/pkg/tui/width"
)

// Default poll intervals.
const (
	DefaultIdleInterval    = 10 * time.Millisecond
	DefaultConfirmInterval = 30 * time.Millisecond
)

// Default titles.
const (
	DefaultTitle       = "Waiting for event"
	DefaultCancelTitle = "Send another event to cancel"
)

// Config holds the per-session settings of a Model.
type Config struct {
	// CancelWindow is the grace period after a trigger. Zero means the
	// first trigger is final.
	CancelWindow time.Duration

	Title       string
	CancelTitle string

	IdleInterval    time.Duration
	ConfirmInterval time.Duration

	Theme *theme.Theme

	// Clock defaults to time.Now, whose readings carry the monotonic clock.
	Clock func() time.Time

	// OnTransition is called on every state change.
	OnTransition func(from, to State)
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.CancelTitle == "" {
		c.CancelTitle = DefaultCancelTitle
	}
	c.Title = width.Sanitize(c.Title)
	c.CancelTitle = width.Sanitize(c.CancelTitle)
	if c.IdleInterval <= 0 {
		c.IdleInterval = DefaultIdleInterval
	}
	if c.ConfirmInterval <= 0 {
		c.ConfirmInterval = DefaultConfirmInterval
	}
	if c.Theme == nil {
		c.Theme = theme.Current()
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// tickMsg drives polling. Exactly one tick is in flight while the model
// is in a live state.
type tickMsg struct{}

// InterruptMsg asks the model to stop as if the user pressed ctrl+c.
type InterruptMsg struct{}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

// Model is the wait controller.
type Model struct {
	cfg   Config
	term  terminal.Terminal
	event *trigger.Event
	quit  *trigger.Quit

	state       State
	err         error
	triggeredAt time.Time
	progress    float64
	bounce      Bounce
	position    int

	geom     Geometry
	lastSize Geometry // from tea.WindowSizeMsg, used when term fails
}

// NewModel creates a controller reading ev and sharing quit with the
// listener. term may be nil, in which case only window size messages
// provide geometry.
func NewModel(cfg Config, term terminal.Terminal, ev *trigger.Event, quit *trigger.Quit) Model {
	return Model{
		cfg:   cfg.withDefaults(),
		term:  term,
		event: ev,
		quit:  quit,
		state: WaitingInitial,
		geom:  Geometry{Width: terminal.FallbackWidth, Height: terminal.FallbackHeight},
	}
}

// Init starts the poll loop.
func (m Model) Init() tea.Cmd {
	return tick(m.cfg.IdleInterval)
}

// Update handles ticks, keys and window size changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.poll()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.interrupt()
		}
	case InterruptMsg:
		return m.interrupt()
	case tea.WindowSizeMsg:
		m.lastSize = Geometry{Width: msg.Width, Height: msg.Height}
	}
	return m, nil
}

// View renders the frame for the current state.
func (m Model) View() string {
	switch m.state {
	case WaitingInitial:
		return IdleFrame(m.geom, m.position, m.cfg.Title, m.cfg.Theme)
	case ConfirmingCancel:
		return CancelFrame(m.geom, m.progress, m.Remaining(), m.cfg.CancelTitle, m.cfg.Theme)
	default:
		return ""
	}
}

// State returns the current state.
func (m Model) State() State {
	return m.state
}

// Progress returns the fraction of the cancellation window elapsed.
func (m Model) Progress() float64 {
	return m.progress
}

// Position returns the idle marker column of the current frame.
func (m Model) Position() int {
	return m.position
}

// Geometry returns the size used for the current frame.
func (m Model) Geometry() Geometry {
	return m.geom
}

// Remaining returns the time left in the cancellation window.
func (m Model) Remaining() time.Duration {
	if m.state != ConfirmingCancel {
		return 0
	}
	left := m.cfg.CancelWindow - m.cfg.Clock().Sub(m.triggeredAt)
	if left < 0 {
		return 0
	}
	return left
}

// Outcome returns the result once the model is in a terminal state.
func (m Model) Outcome() Outcome {
	return Outcome{State: m.state, Err: m.err}
}

func (m Model) poll() (tea.Model, tea.Cmd) {
	if m.state.Done() {
		return m, nil
	}
	if m.quit.IsSet() {
		m.err = ErrAborted
		m = m.transition(DoneCanceled)
		return m, tea.Quit
	}

	m.geom = m.size()

	switch m.state {
	case WaitingInitial:
		if m.event.Triggered() {
			if m.cfg.CancelWindow <= 0 {
				return m.succeed()
			}
			m.triggeredAt = m.cfg.Clock()
			m.progress = 0
			m = m.transition(ConfirmingCancel)
			return m, tick(m.cfg.ConfirmInterval)
		}
		m.position = m.bounce.Step(m.geom.Width)
		return m, tick(m.cfg.IdleInterval)

	case ConfirmingCancel:
		// The window is checked first: an event arriving after it closed
		// but before this poll does not cancel.
		elapsed := m.cfg.Clock().Sub(m.triggeredAt)
		p := float64(elapsed) / float64(m.cfg.CancelWindow)
		if p > m.progress {
			m.progress = p
		}
		if m.progress >= 1.0 {
			m.progress = 1.0
			return m.succeed()
		}
		if !m.event.Triggered() {
			// Cancel event: drop this trigger and resume waiting.
			m.progress = 0
			m = m.transition(WaitingInitial)
			return m, tick(m.cfg.IdleInterval)
		}
		return m, tick(m.cfg.ConfirmInterval)
	}
	return m, nil
}

func (m Model) succeed() (tea.Model, tea.Cmd) {
	m.quit.Set()
	m = m.transition(DoneSuccess)
	return m, tea.Quit
}

func (m Model) interrupt() (tea.Model, tea.Cmd) {
	m.quit.Set()
	if m.state.Done() {
		return m, tea.Quit
	}
	m.err = ErrInterrupted
	m = m.transition(DoneCanceled)
	return m, tea.Quit
}

func (m Model) transition(to State) Model {
	from := m.state
	m.state = to
	if m.cfg.OnTransition != nil && from != to {
		m.cfg.OnTransition(from, to)
	}
	return m
}

// size returns the geometry for this frame. A failing terminal falls back
// to the last window size message, then to the previous frame.
func (m Model) size() Geometry {
	if m.term != nil {
		if w, h, err := m.term.Size(); err == nil && w > 0 && h > 0 {
			return Geometry{Width: w, Height: h}
		}
	}
	if !m.lastSize.empty() {
		return m.lastSize
	}
	return m.geom
}
