package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the camelgraph banner to w.
// The diagram goes to stdout, so callers pass stderr.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	p := out.Profile

	lines := []struct {
		text  string
		color string
	}{
		{`                        _                        _     `, "#fbbf24"},
		{`   ___ __ _ _ __ ___   ___| | __ _ _ __ __ _ _ __ | |__  `, "#f59e0b"},
		{`  / __/ _' | '_ ' _ \ / _ \ |/ _' | '__/ _' | '_ \| '_ \ `, "#f97316"},
		{` | (_| (_| | | | | | |  __/ | (_| | | | (_| | |_) | | | |`, "#ea580c"},
		{`  \___\__,_|_| |_| |_|\___|_|\__, |_|  \__,_| .__/|_| |_|`, "#dc2626"},
		{`                             |___/          |_|          `, "#b91c1c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(p.Color(l.color)))
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  XML routes to EIP diagrams  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
