// ABOUTME: Entry point that runs the wait controller as a Bubble Tea program
// ABOUTME: Maps program termination (context, signals, errors) onto an Outcome

package wait

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the wait screen until the model reaches a terminal state or
// ctx ends. The quit latch is always set on return so the listener stops.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Outcome, error) {
	defer m.quit.Set()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return Outcome{State: DoneCanceled, Err: ErrInterrupted}, nil
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("bubble tea: %w", err)
	}

	fm, ok := final.(Model)
	if !ok || !fm.State().Done() {
		// The program stopped without the model deciding, e.g. SIGTERM.
		return Outcome{State: DoneCanceled, Err: ErrInterrupted}, nil
	}
	return fm.Outcome(), nil
}
