// ABOUTME: Pure frame rendering for the wait screen using lipgloss styles from the theme
// ABOUTME: IdleFrame draws title and bouncing marker; CancelFrame draws the cancellation bar

package wait

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/particle-wait/pkg/tui/theme"
	"github.com/mauromedda/particle-wait/pkg/tui/width"
)

// Geometry is the drawable area in cells.
type Geometry struct {
	Width  int
	Height int
}

func (g Geometry) empty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// IdleFrame renders the waiting screen: the title centered one row above
// the middle and the marker at position on the middle row.
func IdleFrame(g Geometry, position int, title string, th *theme.Theme) string {
	if g.empty() {
		return ""
	}
	s := th.Styles()

	mid := g.Height / 2
	rows := make([]string, g.Height)
	for y := range rows {
		switch {
		case y == mid:
			rows[y] = markerRow(g.Width, position, th.MarkerGlyph, s.Marker)
		case y == mid-1 && title != "":
			rows[y] = overlayRow(g.Width, 0, " ", title, s.Title, s.Title, s.Title)
		default:
			rows[y] = blank(g.Width)
		}
	}
	return strings.Join(rows, "\n")
}

// CancelFrame renders the cancellation window: every row is filled from
// the left for floor(progress*width) cells, the title sits on the middle
// row and the remaining time on the last row.
func CancelFrame(g Geometry, progress float64, remaining time.Duration, title string, th *theme.Theme) string {
	if g.empty() {
		return ""
	}
	s := th.Styles()
	fill := FillWidth(progress, g.Width)
	glyph := th.FillGlyph

	countdown := fmt.Sprintf("%.1fs", remaining.Seconds())

	mid := g.Height / 2
	rows := make([]string, g.Height)
	for y := range rows {
		switch {
		case y == mid && title != "":
			rows[y] = overlayRow(g.Width, fill, glyph, title, s.Fill, s.Alert, s.Title)
		case y == g.Height-1 && y != mid && g.Height >= 3:
			rows[y] = overlayRow(g.Width, fill, glyph, countdown, s.Fill, s.Alert, s.Muted)
		default:
			rows[y] = fillRow(g.Width, fill, glyph, s.Fill)
		}
	}
	return strings.Join(rows, "\n")
}

// FillWidth converts progress to a cell count clamped to [0, total].
func FillWidth(progress float64, total int) int {
	if total <= 0 || progress <= 0 {
		return 0
	}
	n := int(progress * float64(total))
	if n > total {
		return total
	}
	return n
}

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func markerRow(w, position int, glyph string, style lipgloss.Style) string {
	if w < 2 {
		return blank(w)
	}
	if position > w-2 {
		position = w - 2
	}
	if position < 0 {
		position = 0
	}
	return blank(position) + style.Render(strings.Repeat(glyph, 2)) + blank(w-position-2)
}

func fillRow(w, fill int, glyph string, style lipgloss.Style) string {
	if fill <= 0 {
		return blank(w)
	}
	return style.Render(strings.Repeat(glyph, fill)) + blank(w-fill)
}

// overlayRow draws a fill of fill cells with text centered on top of it.
// The text uses onFill when the fill reaches its first cell, offFill
// otherwise.
func overlayRow(w, fill int, glyph, text string, fillStyle, onFill, offFill lipgloss.Style) string {
	text, col := width.Center(text, w)
	tw := width.VisibleWidth(text)
	end := col + tw

	var b strings.Builder

	// Cells before the text.
	pre := min(fill, col)
	if pre > 0 {
		b.WriteString(fillStyle.Render(strings.Repeat(glyph, pre)))
	}
	b.WriteString(blank(col - pre))

	if fill > col {
		b.WriteString(onFill.Render(text))
	} else {
		b.WriteString(offFill.Render(text))
	}

	// Cells after the text.
	post := max(0, fill-end)
	if post > 0 {
		b.WriteString(fillStyle.Render(strings.Repeat(glyph, post)))
	}
	b.WriteString(blank(w - end - post))
	return b.String()
}
