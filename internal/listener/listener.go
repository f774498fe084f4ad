// ABOUTME: Stream Listener: reads event lines and toggles the shared trigger on each match
// ABOUTME: Honors the quit latch every iteration; transport failures are fatal and set quit

package listener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/mauromedda/particle-wait/internal/log"
	"github.com/mauromedda/particle-wait/internal/trigger"
	"github.com/mauromedda/particle-wait/pkg/particle"
)

// Stream is an open line feed.
type Stream interface {
	Next() (string, error)
	Close() error
}

// Source opens a line feed filtered by device and event.
type Source interface {
	Open(ctx context.Context, f particle.Filter) (Stream, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, f particle.Filter) (Stream, error)

// Open calls fn.
func (fn SourceFunc) Open(ctx context.Context, f particle.Filter) (Stream, error) {
	return fn(ctx, f)
}

// ClientSource adapts a particle.Client to Source.
func ClientSource(c *particle.Client) Source {
	return SourceFunc(func(ctx context.Context, f particle.Filter) (Stream, error) {
		s, err := c.Open(ctx, f)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// ErrStreamClosed is wrapped in a TransportError when the server ends the feed.
var ErrStreamClosed = errors.New("event stream closed by server")

// TransportError wraps a failure to open or read the feed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s event stream: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Listener translates matching event lines into Event toggles.
type Listener struct {
	source Source
	filter particle.Filter
	event  *trigger.Event
	quit   *trigger.Quit
	hints  *nearMisses

	// matched is set after a matching event line so the following data
	// line can be logged. Only the Run goroutine touches it.
	matched string
}

// New creates a Listener. The filter is fixed for the listener's lifetime.
func New(source Source, filter particle.Filter, event *trigger.Event, quit *trigger.Quit) *Listener {
	return &Listener{
		source: source,
		filter: filter,
		event:  event,
		quit:   quit,
		hints:  newNearMisses(filter.Event),
	}
}

// Matches reports whether an event named name passes the filter. An empty
// filter matches every event; otherwise names must be equal.
func (l *Listener) Matches(name string) bool {
	return l.filter.Event == "" || name == l.filter.Event
}

// Handle processes one line and reports whether it was a matching event.
// A matching event flips the shared Event: idle becomes triggered and
// triggered becomes idle.
func (l *Listener) Handle(line string) bool {
	if name, ok := particle.EventName(line); ok {
		if !l.Matches(name) {
			l.matched = ""
			l.hints.observe(name)
			log.Debug("listener: ignoring event %q", name)
			return false
		}
		state := l.event.Toggle()
		l.matched = name
		log.Debug("listener: event %q -> %s", name, state)
		return true
	}

	if data, ok := particle.DataField(line); ok && l.matched != "" {
		l.logPayload(l.matched, data)
		l.matched = ""
	}
	return false
}

func (l *Listener) logPayload(name, data string) {
	p, err := particle.DecodeEvent([]byte(data))
	if err != nil {
		log.Debug("listener: event %q: undecodable payload: %v", name, err)
		return
	}
	log.Debug("listener: event %q from %s published %s data=%q",
		name, p.CoreID, p.PublishedAt.Format("15:04:05"), p.Data)
}

// Run opens the feed and processes lines until the quit latch is set, the
// context ends, or the feed fails. Any transport failure sets quit and is
// returned as *TransportError. Run returns nil when stopped by quit or ctx.
func (l *Listener) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Debug("listener: connecting (device=%q event=%q)", l.filter.Device, l.filter.Event)
	stream, err := l.source.Open(ctx, l.filter)
	if err != nil {
		if l.stopped(ctx) {
			return nil
		}
		l.quit.Set()
		return &TransportError{Op: "open", Err: err}
	}

	// Close the stream as soon as quit fires so a blocked Next returns.
	var closeOnce sync.Once
	closeStream := func() { closeOnce.Do(func() { _ = stream.Close() }) }
	defer closeStream()

	go func() {
		select {
		case <-l.quit.Done():
		case <-ctx.Done():
		}
		closeStream()
	}()

	log.Debug("listener: connected")
	defer func() {
		log.Debug("listener: stopped after %d toggles (%s)", l.event.Toggles(), l.event.Load())
	}()

	for {
		if l.stopped(ctx) {
			return nil
		}

		line, err := stream.Next()
		if err != nil {
			if l.stopped(ctx) {
				return nil
			}
			if err == io.EOF {
				err = ErrStreamClosed
			}
			l.quit.Set()
			return &TransportError{Op: "read", Err: err}
		}

		l.Handle(line)
	}
}

func (l *Listener) stopped(ctx context.Context) bool {
	return l.quit.IsSet() || ctx.Err() != nil
}
