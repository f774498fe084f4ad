// ABOUTME: Semantic palette for the wait screen: neutral, muted, marker, alert, success
// ABOUTME: Colors are lipgloss terminal colors; Styles derives ready-made lipgloss styles

package theme

import "github.com/charmbracelet/lipgloss"

// Palette maps semantic roles to terminal colors.
type Palette struct {
	Neutral lipgloss.TerminalColor // titles while waiting
	Muted   lipgloss.TerminalColor // secondary text
	Marker  lipgloss.TerminalColor // idle animation marker

	Alert     lipgloss.TerminalColor // text over the cancel bar
	AlertFill lipgloss.TerminalColor // cancel bar background

	Success lipgloss.TerminalColor // confirmation message
}

// Theme holds a named palette and the glyphs used to draw with it.
type Theme struct {
	Name    string
	Palette Palette

	// MarkerGlyph is drawn twice for the idle marker.
	MarkerGlyph string
	// FillGlyph fills the cancel bar. With a colored AlertFill a space
	// is enough; monochrome themes need a visible glyph.
	FillGlyph string
}

// Styles holds lipgloss styles derived from a Theme.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Marker  lipgloss.Style
	Fill    lipgloss.Style
	Alert   lipgloss.Style
	Success lipgloss.Style
}

// Styles builds the lipgloss styles for t.
func (t *Theme) Styles() Styles {
	p := t.Palette
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(p.Neutral).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
		Marker:  lipgloss.NewStyle().Foreground(p.Marker),
		Fill:    lipgloss.NewStyle().Foreground(p.AlertFill).Background(p.AlertFill),
		Alert:   lipgloss.NewStyle().Foreground(p.Alert).Background(p.AlertFill).Bold(true),
		Success: lipgloss.NewStyle().Foreground(p.Success).Bold(true),
	}
}

// DefaultPalette returns the red/green palette of the default theme.
func DefaultPalette() Palette {
	return Palette{
		Neutral:   lipgloss.NoColor{},
		Muted:     lipgloss.Color("8"),
		Marker:    lipgloss.Color("1"),
		Alert:     lipgloss.Color("15"),
		AlertFill: lipgloss.Color("1"),
		Success:   lipgloss.Color("2"),
	}
}
