// ABOUTME: Server-Sent Events line scanner and field splitter over an io.Reader
// ABOUTME: Lines yields raw lines; ParseLine splits one into field and value

package sse

import (
	"bufio"
	"io"
	"strings"
)

const maxLineSize = 1024 * 1024

// Lines reads newline-delimited lines from an SSE body. CR and CRLF
// terminators are stripped.
type Lines struct {
	scanner *bufio.Scanner
}

// NewLines creates a line scanner over r.
func NewLines(r io.Reader) *Lines {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Lines{scanner: s}
}

// Next returns the next line. It returns io.EOF when the body ends cleanly.
func (l *Lines) Next() (string, error) {
	if l.scanner.Scan() {
		return strings.TrimSuffix(l.scanner.Text(), "\r"), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// ParseLine splits an SSE line into field name and value. Comment lines
// (leading ':') return an empty field. A single space after the colon is
// dropped.
func ParseLine(line string) (field, value string) {
	if strings.HasPrefix(line, ":") {
		return "", strings.TrimPrefix(line[1:], " ")
	}

	field, value, found := strings.Cut(line, ":")
	if !found {
		return line, ""
	}
	return field, strings.TrimPrefix(value, " ")
}
