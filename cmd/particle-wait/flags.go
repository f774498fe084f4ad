// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Long names with single-letter aliases; one positional argument is the device

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	cancel      int
	cancelSet   bool
	device      string
	event       string
	title       string
	cancelTitle string
	theme       string
	apiURL      string
	logFile     string
	verbose     bool
	version     bool
}

// parseFlags parses argv (without the program name). It returns
// flag.ErrHelp after printing usage when -h is given.
func parseFlags(argv []string, stderr io.Writer, markdown bool) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("particle-wait", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, markdown) }

	fs.IntVar(&args.cancel, "cancel", 0, "Cancel window in seconds")
	fs.IntVar(&args.cancel, "c", 0, "Alias for -cancel")
	fs.StringVar(&args.device, "device", "", "Device ID or name")
	fs.StringVar(&args.device, "d", "", "Alias for -device")
	fs.StringVar(&args.event, "event", "", "Event name to wait for")
	fs.StringVar(&args.event, "e", "", "Alias for -event")
	fs.StringVar(&args.title, "title", "", "Title shown while waiting")
	fs.StringVar(&args.cancelTitle, "cancel-title", "", "Title shown during the cancel window")
	fs.StringVar(&args.theme, "theme", "", "Color theme")
	fs.StringVar(&args.apiURL, "api-url", "", "Particle Cloud API base URL")
	fs.StringVar(&args.logFile, "log-file", "", "Append diagnostics to this file")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "cancel" || f.Name == "c" {
			args.cancelSet = true
		}
	})

	if args.cancelSet && args.cancel < 0 {
		return cliArgs{}, fmt.Errorf("-cancel must not be negative, got %d", args.cancel)
	}

	rest := fs.Args()
	switch {
	case len(rest) == 0:
	case len(rest) == 1 && args.device == "":
		args.device = rest[0]
	default:
		return cliArgs{}, fmt.Errorf("unexpected arguments: %q", rest)
	}

	return args, nil
}
