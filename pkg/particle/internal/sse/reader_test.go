// ABOUTME: Table-driven tests for SSE line scanning and field splitting
// ABOUTME: Covers comments, missing spaces, CRLF terminators, and oversized lines

package sse

import (
	"io"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line      string
		wantField string
		wantValue string
	}{
		{"event: button_press", "event", "button_press"},
		{"event:nospace", "event", "nospace"},
		{"event:  two spaces", "event", " two spaces"},
		{"data: {\"a\": 1}", "data", "{\"a\": 1}"},
		{": keepalive", "", "keepalive"},
		{":", "", ""},
		{"retry", "retry", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			field, value := ParseLine(tt.line)
			if field != tt.wantField || value != tt.wantValue {
				t.Errorf("ParseLine(%q) = (%q, %q), want (%q, %q)",
					tt.line, field, value, tt.wantField, tt.wantValue)
			}
		})
	}
}

func TestLines_Next(t *testing.T) {
	t.Parallel()

	l := NewLines(strings.NewReader(":ok\r\n\r\nevent: foo\r\ndata: bar\n"))
	want := []string{":ok", "", "event: foo", "data: bar"}

	for i, w := range want {
		got, err := l.Next()
		if err != nil {
			t.Fatalf("line %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("line %d = %q, want %q", i, got, w)
		}
	}

	if _, err := l.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last line, got %v", err)
	}
}

func TestLines_LargeLine(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("x", 512*1024)
	l := NewLines(strings.NewReader("data: " + big + "\n"))
	got, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len("data: ")+len(big) {
		t.Errorf("line length = %d, want %d", len(got), len("data: ")+len(big))
	}
}
