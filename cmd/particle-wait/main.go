// ABOUTME: CLI entry point for particle-wait with terminal crash recovery
// ABOUTME: Parses flags, loads config, runs the listener and wait screen side by side

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/particle-wait/internal/termfix"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/particle-wait/internal/config"
	"github.com/mauromedda/particle-wait/internal/listener"
	pwlog "github.com/mauromedda/particle-wait/internal/log"
	"github.com/mauromedda/particle-wait/internal/trigger"
	"github.com/mauromedda/particle-wait/internal/wait"
	"github.com/mauromedda/particle-wait/pkg/particle"
	"github.com/mauromedda/particle-wait/pkg/tui/terminal"
	"github.com/mauromedda/particle-wait/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	term := terminal.NewProcessTerminal(os.Stderr)
	defer terminal.RestoreOnPanic(term)

	os.Exit(realMain(os.Args[1:], term))
}

// realMain returns the process exit code.
func realMain(argv []string, term *terminal.ProcessTerminal) int {
	args, err := parseFlags(argv, os.Stderr, term.IsTerminal())
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if args.version {
		fmt.Printf("particle-wait %s (%s) built %s\n", version, commit, date)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args, term); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// run performs one wait session: config, connect, display, outcome.
func run(ctx context.Context, args cliArgs, term *terminal.ProcessTerminal) error {
	if args.verbose {
		pwlog.SetLevel(pwlog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts, err := resolveOptions(args, settings, os.Getenv)
	if err != nil {
		return err
	}
	theme.Set(opts.theme)

	restoreLog, err := redirectLog(args.logFile, term.IsTerminal())
	if err != nil {
		return err
	}
	defer restoreLog()

	client := particle.NewClient(opts.apiURL, opts.token)
	pwlog.Debug("particle: base=%s device=%q event=%q window=%s",
		client.BaseURL(), opts.filter.Device, opts.filter.Event, opts.cancelWindow)

	ev := trigger.NewEvent()
	quit := trigger.NewQuit()

	lst := listener.New(listener.ClientSource(client), opts.filter, ev, quit)
	model := wait.NewModel(wait.Config{
		CancelWindow: opts.cancelWindow,
		Title:        opts.title,
		CancelTitle:  opts.cancelTitle,
		Theme:        opts.theme,
		OnTransition: func(from, to wait.State) {
			pwlog.Debug("wait: %s -> %s", from, to)
		},
	}, term, ev, quit)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		defer terminal.Recover(term, &err)
		defer quit.Set()
		return lst.Run(gctx)
	})

	var outcome wait.Outcome
	g.Go(func() error {
		var err error
		outcome, err = wait.Run(ctx, model,
			tea.WithOutput(os.Stderr),
			tea.WithAltScreen(),
			tea.WithoutSignalHandler(),
		)
		return err
	})

	// The listener's error comes first when it caused the abort.
	if err := g.Wait(); err != nil {
		return err
	}

	restoreLog()

	if !outcome.Succeeded() {
		return outcome.Err
	}

	styles := opts.theme.Styles()
	fmt.Fprintln(os.Stderr, styles.Success.Render("Event confirmed"))
	return nil
}

// redirectLog points the logger away from the live display. With a path,
// logs are appended to that file. On a terminal without a path, logs are
// held in memory and replayed on stderr by the returned restore func.
// Restore is safe to call more than once.
func redirectLog(path string, tty bool) (restore func(), err error) {
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		prev := pwlog.SetOutput(f)
		return once(func() {
			pwlog.SetOutput(prev)
			_ = f.Close()
		}), nil

	case tty:
		var buf bytes.Buffer
		prev := pwlog.SetOutput(&buf)
		return once(func() {
			pwlog.SetOutput(prev)
			_, _ = io.Copy(prev, &buf)
		}), nil

	default:
		return func() {}, nil
	}
}

func once(fn func()) func() {
	done := false
	return func() {
		if done {
			return
		}
		done = true
		fn()
	}
}
