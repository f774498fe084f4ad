// ABOUTME: Tests for title sanitizing, width measurement, truncation and centering
// ABOUTME: Table-driven over ASCII, wide CJK, combining marks and escapes

package width

import "testing"

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "waiting", want: 7},
		{name: "styled", in: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", in: "待機", want: 4},
		{name: "combining", in: "e\u0301", want: 1},
		{name: "ellipsis", in: "…", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := VisibleWidth(tt.in); got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{name: "fits", in: "press", maxWidth: 10, want: "press"},
		{name: "exact", in: "press", maxWidth: 5, want: "press"},
		{name: "cut", in: "press again", maxWidth: 6, want: "press…"},
		{name: "one cell", in: "press", maxWidth: 1, want: "…"},
		{name: "zero", in: "press", maxWidth: 0, want: ""},
		{name: "wide not split", in: "待機中", maxWidth: 4, want: "待…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Truncate(tt.in, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
			if VisibleWidth(got) > tt.maxWidth {
				t.Errorf("Truncate(%q, %d) width %d exceeds max", tt.in, tt.maxWidth, VisibleWidth(got))
			}
		})
	}
}

func TestCenter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		total   int
		wantStr string
		wantCol int
	}{
		{"ab", 10, "ab", 4},
		{"abc", 10, "abc", 3},
		{"abcdef", 4, "abc…", 0},
		{"", 8, "", 4},
	}

	for _, tt := range tests {
		s, col := Center(tt.in, tt.total)
		if s != tt.wantStr || col != tt.wantCol {
			t.Errorf("Center(%q, %d) = (%q, %d), want (%q, %d)", tt.in, tt.total, s, col, tt.wantStr, tt.wantCol)
		}
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Waiting", want: "Waiting"},
		{name: "escapes removed", in: "\x1b[2Jboom\x1b]0;title\x07", want: "boom"},
		{name: "controls to spaces", in: "a\tb\nc", want: "a b c"},
		{name: "nfc", in: "e\u0301", want: "\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
