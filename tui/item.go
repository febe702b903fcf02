// Package tui provides the interactive terminal front end.
package tui

import (
	"fmt"

	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/style"
	"github.com/spf13/viper"
)

// listItem renders an entry in the videos list.
type listItem struct {
	internal *entry
}

func (t *listItem) Title() string {
	e := t.internal
	if e.record != nil {
		return fmt.Sprintf("%d. %s", e.index, e.record.Title)
	}
	return fmt.Sprintf("%d. %s", e.index, e.link)
}

func (t *listItem) Description() string {
	e := t.internal

	var mark string
	switch e.status {
	case media.Pending:
		mark = style.Faint("·")
	case media.InFlight:
		mark = style.Fg(style.Yellow)(icon.Get(icon.Progress))
	case media.Succeeded:
		mark = style.Fg(style.Green)(icon.Get(icon.Success))
	case media.Failed:
		mark = style.Fg(style.Red)(icon.Get(icon.Fail))
	}

	message := e.message
	if message == "" {
		message = e.status.String()
	}

	description := fmt.Sprintf("%s %s", mark, message)
	if e.record != nil {
		description = fmt.Sprintf("%s %s %s", mark, style.Fg(style.Lavender)("@"+e.record.Author), style.Faint(message))
	}

	if viper.GetBool(key.TUIShowURLs) && e.record != nil {
		description += " " + style.Faint(e.link.String())
	}

	return description
}

func (t *listItem) FilterValue() string {
	return t.Title()
}
