// Package tui provides the interactive terminal front end.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/clipdrop/clipdrop/constant"
	"github.com/clipdrop/clipdrop/internal/ui"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/style"
	"github.com/clipdrop/clipdrop/util"
	"github.com/spf13/viper"
)

// statefulBubble is the whole TUI model. Run events arrive over events and are applied
// to entries on the bubbletea loop, so views never read state the run goroutine writes.
type statefulBubble struct {
	state   state
	history []state
	loading bool
	busy    bool

	keymap *statefulKeymap

	spinnerC  spinner.Model
	inputC    textarea.Model
	itemsC    list.Model
	progressC progress.Model
	helpC     help.Model

	ctx    context.Context
	cancel context.CancelFunc
	events chan tea.Msg

	entries  map[int]*entry
	found    int
	progress float64
	status   statusMsg

	lastError     error
	width, height int
	notifier      *ui.Model

	options *Options
}

// entry is the TUI's own view of one queue item.
type entry struct {
	index   int
	link    media.Link
	status  media.Status
	message string
	record  *media.Record
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Processing is never returned to.
	if b.state != processingState {
		b.history = append(b.history, b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if n := len(b.history); n > 0 {
		b.setState(b.history[n-1])
		b.history = b.history[:n-1]
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	// Header lines of the processing view sit above the list.
	b.itemsC.SetSize(listWidth, listHeight-headerHeight)
	b.itemsC.Help.Width = listWidth

	b.inputC.SetWidth(listWidth)
	b.inputC.SetHeight(util.Max(3, (height-y)/2))

	b.progressC.Width = listWidth
	b.helpC.Width = listWidth

	b.width = width - x
	b.height = height - y
}

func (b *statefulBubble) startLoading() tea.Cmd {
	b.loading = true
	b.busy = true
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.busy = false
}

func newBubble(ctx context.Context, cancel context.CancelFunc, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:   keymap,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan tea.Msg),
		entries:  make(map[int]*entry),
		status:   statusMsg{severity: report.Secondary},
		notifier: &ui.Model{},
		options:  options,
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = true
	delegate.SetHeight(2)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	bubble.itemsC = list.New([]list.Item{}, delegate, 0, 0)
	bubble.itemsC.KeyMap = keymap.forList()
	bubble.itemsC.AdditionalShortHelpKeys = keymap.ShortHelp
	bubble.itemsC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return keymap.FullHelp()[0]
	}
	bubble.itemsC.Title = "Videos"
	bubble.itemsC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	bubble.itemsC.Styles.NoItems = paddingStyle
	bubble.itemsC.StatusMessageLifetime = time.Hour * 999
	bubble.itemsC.SetShowPagination(false)
	bubble.itemsC.SetShowStatusBar(false)
	bubble.itemsC.SetFilteringEnabled(false)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textarea.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Paste text containing TikTok links (v%s)", constant.Version)
	bubble.inputC.ShowLineNumbers = false
	bubble.inputC.CharLimit = 0
	bubble.inputC.KeyMap.InsertNewline = keymap.newline
	bubble.inputC.SetValue(options.Text)
	bubble.found = countLinks(options.Text)

	bubble.progressC = progress.New(progress.WithDefaultGradient())

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
