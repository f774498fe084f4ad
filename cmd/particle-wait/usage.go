// ABOUTME: Usage text written as markdown; rendered with glamour on a terminal
// ABOUTME: Falls back to the raw markdown when stderr is redirected or rendering fails

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

const usageWidth = 80

const usageMarkdown = `# particle-wait

Wait for a Particle Cloud event, with an optional window to cancel it.

    particle-wait [flags] [device]

A second matching event during the cancel window returns to waiting.

## Flags

| Flag | Description |
|---|---|
| ` + "`-d, -device ID`" + ` | device to listen to (or the positional argument) |
| ` + "`-e, -event NAME`" + ` | only react to this event name |
| ` + "`-c, -cancel N`" + ` | cancel window in seconds, 0 disables it |
| ` + "`-title TEXT`" + ` | title while waiting |
| ` + "`-cancel-title TEXT`" + ` | title during the cancel window |
| ` + "`-theme NAME`" + ` | ` + "`default`" + ` or ` + "`mono`" + ` |
| ` + "`-api-url URL`" + ` | API base URL (default ` + "`https://api.particle.io`" + `) |
| ` + "`-log-file PATH`" + ` | append diagnostics to PATH |
| ` + "`-verbose`" + ` | debug logging |
| ` + "`-version`" + ` | print version and exit |

## Configuration

Settings are read from ` + "`~/.particle-wait/config.yaml`" + ` and
` + "`./.particle-wait/config.yaml`" + `; flags override both. The access token
comes from ` + "`access_token`" + `, then ` + "`ACCESS_TOKEN`" + `, then
` + "`PARTICLE_ACCESS_TOKEN`" + `.

## Exit status

0 when the event is confirmed, 1 on interrupt or error.
`

// printUsage writes the usage text to w, rendered when markdown is true.
func printUsage(w io.Writer, markdown bool) {
	if markdown {
		if out, err := renderMarkdown(usageMarkdown, usageWidth); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, usageMarkdown)
}

func renderMarkdown(md string, width int) (string, error) {
	// termfix already fixed the background as dark; auto style would
	// query the terminal again.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, " \n") + "\n", nil
}
