// ABOUTME: Built-in themes: default (red/green) and mono (no color, glyph-drawn bar)
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

var builtins = map[string]*Theme{
	"default": {
		Name:        "default",
		Palette:     DefaultPalette(),
		MarkerGlyph: "█",
		FillGlyph:   " ",
	},
	"mono": {
		Name: "mono",
		Palette: Palette{
			Neutral:   lipgloss.NoColor{},
			Muted:     lipgloss.NoColor{},
			Marker:    lipgloss.NoColor{},
			Alert:     lipgloss.NoColor{},
			AlertFill: lipgloss.NoColor{},
			Success:   lipgloss.NoColor{},
		},
		MarkerGlyph: "#",
		FillGlyph:   "X",
	},
}

// Builtin returns the built-in theme called name.
func Builtin(name string) (*Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// BuiltinNames returns the sorted names of all built-in themes.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
