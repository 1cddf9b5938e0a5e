package tui

import (
	"github.com/muesli/termenv"
)

// Status renders a one-line parse verdict, colored when the profile supports it.
func Status(p termenv.Profile, valid bool, detail string) string {
	if valid {
		return p.String("✔ valid").Foreground(p.Color("#22c55e")).Bold().String() + detail
	}
	return p.String("✘ invalid").Foreground(p.Color("#ef4444")).Bold().String() + detail
}
