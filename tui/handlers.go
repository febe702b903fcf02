// Package tui provides the interactive terminal front end.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/internal/ui"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/link"
	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/queue"
	"github.com/clipdrop/clipdrop/report"
	"github.com/spf13/viper"
)

type (
	statusMsg struct {
		message  string
		severity report.Severity
	}

	itemStatusMsg struct {
		index   int
		message string
	}

	itemResolvedMsg struct {
		index  int
		record *media.Record
	}

	itemFailedMsg struct {
		index int
	}

	progressMsg struct {
		current, total int
	}

	runDoneMsg struct {
		summary queue.Summary
	}

	downloadsDoneMsg struct {
		outcomes []download.Outcome
	}
)

// channelReporter forwards notifications to the bubbletea loop. Sends give up once ctx is done
// so a quitting program never leaves the run goroutine blocked.
type channelReporter struct {
	ctx    context.Context
	events chan<- tea.Msg
}

func (r channelReporter) send(msg tea.Msg) {
	select {
	case r.events <- msg:
	case <-r.ctx.Done():
	}
}

func (r channelReporter) OnStatus(message string, severity report.Severity) {
	r.send(statusMsg{message: message, severity: severity})
}

func (r channelReporter) OnItemStatus(index int, message string) {
	r.send(itemStatusMsg{index: index, message: message})
}

func (r channelReporter) OnItemResolved(index int, record *media.Record) {
	r.send(itemResolvedMsg{index: index, record: record})
}

func (r channelReporter) OnItemFailed(index int) {
	r.send(itemFailedMsg{index: index})
}

func (r channelReporter) OnProgress(current, total int) {
	r.send(progressMsg{current: current, total: total})
}

func (b *statefulBubble) reporter() report.Reporter {
	return report.Multi{report.Log{}, channelReporter{ctx: b.ctx, events: b.events}}
}

func limit() int {
	if n := viper.GetInt(key.ExtractMaxLinks); n > 0 {
		return n
	}
	return link.MaxLinks
}

func countLinks(text string) int {
	if text == "" {
		return 0
	}
	return link.Count(text)
}

// begin replaces the list with one pending entry per candidate.
func (b *statefulBubble) begin(candidates media.CandidateSet) tea.Cmd {
	b.entries = make(map[int]*entry, len(candidates))
	b.progress = 0

	items := make([]list.Item, len(candidates))
	for i, l := range candidates {
		e := &entry{index: i + 1, link: l, status: media.Pending}
		b.entries[e.index] = e
		items[i] = &listItem{internal: e}
	}

	b.itemsC.ResetSelected()
	return b.itemsC.SetItems(items)
}

func (b *statefulBubble) runQueue(candidates media.CandidateSet) tea.Cmd {
	return func() tea.Msg {
		items := b.options.Runner.Run(b.ctx, candidates, b.reporter())
		channelReporter{ctx: b.ctx, events: b.events}.send(runDoneMsg{summary: queue.Summarize(items)})
		return nil
	}
}

func (b *statefulBubble) downloadAll(records []*media.Record) tea.Cmd {
	return func() tea.Msg {
		outcomes := b.options.Downloader.All(b.ctx, records, b.reporter())
		channelReporter{ctx: b.ctx, events: b.events}.send(downloadsDoneMsg{outcomes: outcomes})
		return nil
	}
}

func (b *statefulBubble) downloadOne(record *media.Record) tea.Cmd {
	return func() tea.Msg {
		rep := channelReporter{ctx: b.ctx, events: b.events}
		rep.OnItemStatus(record.Index, "Downloading")

		outcome := b.options.Downloader.One(b.ctx, record)
		rep.OnItemStatus(record.Index, download.Describe(outcome))
		rep.send(downloadsDoneMsg{outcomes: []download.Outcome{outcome}})
		return nil
	}
}

// waitForEvent delivers the next run event. Update re-arms it after every event
// until a done message arrives.
func (b *statefulBubble) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *statefulBubble) openLink(url string) tea.Cmd {
	return func() tea.Msg {
		if err := b.options.Open(url); err != nil {
			log.Errorf("open %s: %v", url, err)
			return ui.NotificationMsg(fmt.Sprintf("Could not open %s", url))
		}
		return nil
	}
}

// apply folds a run event into the entries. It reports whether msg was an event.
func (b *statefulBubble) apply(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case statusMsg:
		b.status = msg
	case progressMsg:
		if msg.total > 0 {
			b.progress = float64(msg.current) / float64(msg.total)
		}
	case itemStatusMsg:
		if e, ok := b.entries[msg.index]; ok {
			e.message = msg.message
			if e.status == media.Pending {
				e.status = media.InFlight
			}
		}
	case itemResolvedMsg:
		if e, ok := b.entries[msg.index]; ok {
			e.status = media.Succeeded
			e.record = msg.record
			e.message = "Ready"
		}
	case itemFailedMsg:
		if e, ok := b.entries[msg.index]; ok {
			e.status = media.Failed
			e.message = "Extraction failed (API limit or invalid URL)"
		}
	default:
		return false
	}
	return true
}

func (b *statefulBubble) selected() (*entry, bool) {
	item, ok := b.itemsC.SelectedItem().(*listItem)
	if !ok {
		return nil, false
	}
	return item.internal, true
}

// reset returns to an empty input, as after "clear".
func (b *statefulBubble) reset() tea.Cmd {
	b.options.Runner.State.Reset()
	b.entries = make(map[int]*entry)
	b.progress = 0
	b.found = 0
	b.status = statusMsg{severity: report.Secondary}
	b.inputC.Reset()
	b.history = nil
	b.setState(inputState)
	b.inputC.Focus()
	return b.itemsC.SetItems(nil)
}
