// ABOUTME: Merges CLI flags over YAML settings into the options of one wait session
// ABOUTME: Resolves the access token, cancel window, titles, and theme

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mauromedda/particle-wait/internal/config"
	"github.com/mauromedda/particle-wait/pkg/particle"
	"github.com/mauromedda/particle-wait/pkg/tui/theme"
)

type options struct {
	filter       particle.Filter
	token        string
	apiURL       string
	cancelWindow time.Duration
	title        string
	cancelTitle  string
	theme        *theme.Theme
}

// resolveOptions applies args over s. Flags win over config values.
func resolveOptions(args cliArgs, s *config.Settings, getenv func(string) string) (options, error) {
	if s == nil {
		s = &config.Settings{}
	}

	token, err := config.Token(s, getenv)
	if err != nil {
		return options{}, err
	}

	opts := options{
		filter: particle.Filter{
			Device: pick(args.device, s.Device),
			Event:  pick(args.event, s.Event),
		},
		token:        token,
		apiURL:       particle.NormalizeBaseURL(pick(args.apiURL, s.APIURL)),
		cancelWindow: time.Duration(s.CancelSeconds) * time.Second,
		title:        pick(args.title, s.Title),
		cancelTitle:  pick(args.cancelTitle, s.CancelTitle),
	}
	if args.cancelSet {
		opts.cancelWindow = time.Duration(args.cancel) * time.Second
	}

	name := pick(args.theme, s.Theme)
	if name == "" {
		opts.theme = theme.Current()
	} else {
		t, ok := theme.Builtin(name)
		if !ok {
			return options{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(theme.BuiltinNames(), ", "))
		}
		opts.theme = t
	}

	return opts, nil
}

// pick returns flag when set, otherwise fallback.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}
