// Package tui provides the interactive terminal front end.
package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/internal/ui"
	"github.com/clipdrop/clipdrop/link"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/util"
	"github.com/samber/lo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	if b.apply(msg) {
		return b, tea.Batch(cmd, b.waitForEvent())
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		if !b.loading {
			return b, cmd
		}
		var tick tea.Cmd
		b.spinnerC, tick = b.spinnerC.Update(msg)
		return b, tea.Batch(cmd, tick)
	case runDoneMsg:
		b.stopLoading()
		b.progress = 1
		b.newState(resultsState)
		return b, cmd
	case downloadsDoneMsg:
		b.stopLoading()
		return b, tea.Batch(cmd, ui.Notify(describeDownloads(msg.outcomes)))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			b.cancel()
			return b, tea.Quit
		}

		// Runs cannot be cancelled; input waits until they finish.
		if b.busy {
			return b, cmd
		}
	}

	var next tea.Cmd
	switch b.state {
	case inputState:
		next = b.updateInput(msg)
	case resultsState:
		next = b.updateResults(msg)
	case errorState:
		next = b.updateError(msg)
	}

	return b, tea.Batch(cmd, next)
}

func (b *statefulBubble) updateInput(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(msg, b.keymap.extract) {
		candidates, condition := link.ExtractN(b.inputC.Value(), limit())

		var notice tea.Cmd
		switch condition {
		case link.Empty:
			return ui.Notify(icon.Get(icon.Warn) + " No URLs found to process")
		case link.Truncated:
			notice = ui.Notify(fmt.Sprintf("Only the first %d links will be processed", len(candidates)))
		}

		b.inputC.Blur()
		b.newState(processingState)
		return tea.Batch(
			b.begin(candidates),
			b.startLoading(),
			b.runQueue(candidates),
			b.waitForEvent(),
			notice,
		)
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.found = countLinks(b.inputC.Value())
	return cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.download):
			e, ok := b.selected()
			if !ok || e.record == nil {
				return nil
			}
			b.busy = true
			return tea.Batch(b.downloadOne(e.record), b.waitForEvent())
		case bubblesKey.Matches(msg, b.keymap.downloadAll):
			records := b.options.Runner.State.Records()
			if len(records) == 0 {
				return ui.Notify("Nothing to download")
			}
			return tea.Batch(b.startLoading(), b.downloadAll(records), b.waitForEvent())
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if e, ok := b.selected(); ok {
				return b.openLink(e.link.String())
			}
			return nil
		case bubblesKey.Matches(msg, b.keymap.clear):
			return b.reset()
		}
	}

	var cmd tea.Cmd
	b.itemsC, cmd = b.itemsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		}
	}
	return nil
}

func describeDownloads(outcomes []download.Outcome) string {
	if len(outcomes) == 1 {
		return download.Describe(outcomes[0])
	}

	if lo.ContainsBy(outcomes, func(o download.Outcome) bool { return o.Kind == download.Interrupted }) {
		return icon.Get(icon.Warn) + " Downloads interrupted"
	}

	opened := lo.CountBy(outcomes, func(o download.Outcome) bool {
		return o.Kind == download.OpenedExternally
	})
	if opened == 0 {
		return icon.Get(icon.Success) + " All downloaded"
	}
	return fmt.Sprintf("%s All done, %s opened in browser", icon.Get(icon.Success), util.Quantify(opened, "video", "videos"))
}

// statusOf counts entries by status for the header.
func (b *statefulBubble) statusOf(status media.Status) int {
	return len(lo.Filter(lo.Values(b.entries), func(e *entry, _ int) bool {
		return e.status == status
	}))
}
