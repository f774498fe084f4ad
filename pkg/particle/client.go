// ABOUTME: Streaming HTTP client for the Particle Cloud server-sent event API
// ABOUTME: Bearer auth, proxy from environment, no retries; Stream yields raw lines

package particle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	pwhttp "github.com/mauromedda/particle-wait/internal/http"
	"github.com/mauromedda/particle-wait/pkg/particle/internal/sse"
)

const maxErrorBody = 64 * 1024

// Client opens event streams against one API endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a client for baseURL authenticated with token.
// An empty baseURL selects DefaultBaseURL.
//
// The client sets no overall timeout: event streams are unbounded and are
// ended by cancelling the context or closing the Stream.
func NewClient(baseURL, token string) *Client {
	return &Client{
		httpClient: pwhttp.StreamingClient(),
		baseURL:    NormalizeBaseURL(baseURL),
		token:      token,
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Open connects to the event stream selected by f. A non-2xx status is
// returned as *APIError. The caller must Close the returned Stream.
func (c *Client) Open(ctx context.Context, f Filter) (*Stream, error) {
	path := EventsPath(f)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("event stream request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	return newStream(resp.Body), nil
}

// Stream is an open event stream. Next may be called from one goroutine
// while Close is called from another.
type Stream struct {
	body      io.ReadCloser
	lines     *sse.Lines
	closeOnce sync.Once
	closeErr  error
}

func newStream(body io.ReadCloser) *Stream {
	return &Stream{
		body:  body,
		lines: sse.NewLines(body),
	}
}

// Next blocks for the next raw line. It returns io.EOF when the server
// ends the response.
func (s *Stream) Next() (string, error) {
	return s.lines.Next()
}

// Close releases the connection and unblocks a pending Next.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.body.Close()
	})
	return s.closeErr
}

// EventName returns the event name announced by line, if line is an
// "event:" field.
func EventName(line string) (string, bool) {
	field, value := sse.ParseLine(line)
	if field != "event" {
		return "", false
	}
	return value, true
}

// DataField returns the value of a "data:" line.
func DataField(line string) (string, bool) {
	field, value := sse.ParseLine(line)
	if field != "data" {
		return "", false
	}
	return value, true
}
