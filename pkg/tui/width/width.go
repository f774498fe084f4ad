// ABOUTME: Display width, sanitizing, truncation and centering for titles drawn on the wait screen
// ABOUTME: Grapheme-aware via uniseg + go-runewidth; input NFC-normalized with x/text

package width

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "…"

// Sanitize prepares user-supplied text for cell-positioned drawing: escape
// sequences are removed, other control characters become spaces, and the
// result is NFC-normalized so combining marks measure as one cell.
func Sanitize(s string) string {
	s = StripANSI(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	return norm.NFC.String(s)
}

// VisibleWidth returns the number of terminal cells s occupies. Escape
// sequences count as zero.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		w += graphemeWidth(g.Str())
	}
	return w
}

// Truncate shortens s to at most maxWidth cells, ending with an ellipsis
// when anything was cut. Grapheme clusters are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ellipsis
	}

	var b strings.Builder
	used := 0
	limit := maxWidth - 1
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := graphemeWidth(g.Str())
		if used+cw > limit {
			break
		}
		b.WriteString(g.Str())
		used += cw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// Center returns s truncated to totalWidth cells and the column at which
// it must start to appear centered.
func Center(s string, totalWidth int) (string, int) {
	s = Truncate(s, totalWidth)
	return s, (totalWidth - VisibleWidth(s)) / 2
}

// isPlainASCII reports whether s holds only printable ASCII.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of one grapheme cluster, taken
// from its first rune.
func graphemeWidth(cluster string) int {
	for _, r := range cluster {
		return runewidth.RuneWidth(r)
	}
	return 0
}
