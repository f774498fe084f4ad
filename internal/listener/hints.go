// ABOUTME: Near-miss detection for event names that resemble but do not equal the filter
// ABOUTME: Uses sahilm/fuzzy; each resembling name is reported once

package listener

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/particle-wait/internal/log"
)

// nearMisses remembers which non-matching names were already reported.
// Only the Run goroutine calls observe.
type nearMisses struct {
	filter string
	seen   map[string]struct{}
}

func newNearMisses(filter string) *nearMisses {
	return &nearMisses{
		filter: filter,
		seen:   make(map[string]struct{}),
	}
}

// resembles reports whether name fuzzily contains the filter, ignoring case.
func (n *nearMisses) resembles(name string) bool {
	if n.filter == "" {
		return false
	}
	return len(fuzzy.Find(strings.ToLower(n.filter), []string{strings.ToLower(name)})) > 0
}

// observe warns the first time a resembling name is ignored and reports
// whether a warning was emitted.
func (n *nearMisses) observe(name string) bool {
	if _, ok := n.seen[name]; ok {
		return false
	}
	if !n.resembles(name) {
		return false
	}
	n.seen[name] = struct{}{}
	log.Warn("listener: ignoring event %q: filter %q requires an exact name", name, n.filter)
	return true
}
