// Package util holds small helpers shared across packages.
package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/ansi"
	"golang.org/x/term"
)

// TerminalSize reports the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintErasable shows msg on the current line and returns a func that wipes it.
// Nothing is printed when stdout is not a terminal.
func PrintErasable(msg string) (erase func()) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func() {}
	}

	_, _ = fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", ansi.PrintableRuneWidth(msg)))
	}
}
