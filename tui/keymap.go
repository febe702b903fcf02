// Package tui provides the interactive terminal front end.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/clipdrop/clipdrop/color"
	"github.com/clipdrop/clipdrop/style"
)

// statefulKeymap holds every binding; help() picks the ones that apply to the current state.
type statefulKeymap struct {
	state state

	quit, forceQuit key.Binding

	// input
	extract, newline key.Binding

	// results
	download, downloadAll, openURL, clear key.Binding

	// error
	back key.Binding

	// list navigation
	up, down, left, right, top, bottom, showHelp key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func newStatefulKeymap() *statefulKeymap {
	accent := style.Fg(color.Orange)

	return &statefulKeymap{
		quit:      bind("q", "quit", "q"),
		forceQuit: bind("ctrl+c", "quit", "ctrl+c", "ctrl+d"),

		extract: bind(accent("enter"), accent("extract"), "enter"),
		newline: bind("ctrl+j", "new line", "ctrl+j", "alt+enter"),

		download:    bind("d", "download", "d"),
		downloadAll: bind("D", "download all", "D"),
		openURL:     bind("o", "open link", "o"),
		clear:       bind("c", "clear", "c"),

		back: bind("esc", "back", "esc"),

		up:       bind("↑", "up", "up", "k"),
		down:     bind("↓", "down", "down", "j"),
		left:     bind("←", "prev page", "left", "h"),
		right:    bind("→", "next page", "right", "l"),
		top:      bind("g", "top", "g", "home"),
		bottom:   bind("G", "bottom", "G", "end"),
		showHelp: bind("?", "help", "?"),
	}
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

// help returns the short and full help for the current state.
func (k *statefulKeymap) help() (short, full []key.Binding) {
	switch k.state {
	case inputState:
		short = []key.Binding{k.extract, k.newline, k.forceQuit}
	case processingState:
		short = []key.Binding{k.forceQuit}
	case resultsState:
		short = []key.Binding{k.download, k.downloadAll, k.clear}
		full = []key.Binding{k.download, k.downloadAll, k.openURL, k.clear, k.quit}
	case errorState:
		short = []key.Binding{k.back, k.quit}
	}

	if full == nil {
		full = short
	}
	return short, full
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:      k.up,
		CursorDown:    k.down,
		NextPage:      k.right,
		PrevPage:      k.left,
		GoToStart:     k.top,
		GoToEnd:       k.bottom,
		ShowFullHelp:  k.showHelp,
		CloseFullHelp: k.showHelp,
		Quit:          k.quit,
		ForceQuit:     k.forceQuit,
	}
}
