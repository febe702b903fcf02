// Package report carries progress and status notifications from the core to whatever renders them.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/style"
)

// Console prints human-readable progress lines, typically to stderr.
type Console struct {
	Out io.Writer
}

func (c Console) OnStatus(message string, severity Severity) {
	var render func(string) string
	switch severity {
	case Primary:
		render = style.Primary
	case Success:
		render = style.Success
	case Error:
		render = style.Danger
	default:
		render = style.Faint
	}
	fmt.Fprintln(c.Out, render(strings.ToUpper(message)))
}

func (c Console) OnItemStatus(index int, message string) {
	symbol := icon.Progress
	switch message {
	case "Downloaded":
		symbol = icon.Download
	case "Opened in browser":
		symbol = icon.External
	}
	fmt.Fprintf(c.Out, "  %s #%d %s\n", icon.Get(symbol), index, style.Faint(message))
}

func (c Console) OnItemResolved(index int, record *media.Record) {
	fmt.Fprintf(c.Out, "  %s #%d %s %s\n",
		style.Success(icon.Get(icon.Success)),
		index,
		style.Bold(record.Title),
		style.Faint("@"+record.Author),
	)
}

func (c Console) OnItemFailed(index int) {
	fmt.Fprintf(c.Out, "  %s #%d %s\n",
		style.Danger(icon.Get(icon.Fail)),
		index,
		style.Danger("extraction failed (api limit or invalid url)"),
	)
}

func (Console) OnProgress(int, int) {}
