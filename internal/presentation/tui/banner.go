package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner shown by the version command.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"   __ _ _ __ __ _ ___ ", "#818cf8"},
		{"  / _` | '__/ _` / __|", "#a78bfa"},
		{" | (_| | | | (_| \\__ \\", "#c084fc"},
		{"  \\__,_|_|  \\__, |___/", "#e879f9"},
		{"            |___/     ", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
