// ABOUTME: Fixes lipgloss to a dark background before bubbletea's init() can query the terminal
// ABOUTME: Import with _ ahead of any package that pulls in bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background lipgloss skips the OSC 11 query whose
	// reply would otherwise arrive on stdin while the wait screen runs.
	// This package must not import bubbletea, directly or not, so that
	// init order puts this first.
	lipgloss.SetHasDarkBackground(true)
}
