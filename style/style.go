// Package style composes lipgloss styles for the TUI and console output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/clipdrop/clipdrop/color"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background. Empty colors are left unset.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer that paints text with c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a renderer that limits text to max cells.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).MaxHeight(1).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Status line renderers, one per kind of message.
var (
	Primary = Fg(color.Purple)
	Success = Fg(color.Green)
	Warning = Fg(color.Yellow)
	Danger  = Fg(color.Red)
)

var Title = func(s string) string {
	return Colored(Base, AccentColor).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}
