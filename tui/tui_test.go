package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/queue"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/session"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestBubble() *statefulBubble {
	ctx, cancel := context.WithCancel(context.Background())
	options := &Options{
		Runner:     &queue.Runner{State: session.New()},
		Downloader: &download.Orchestrator{},
		Open:       func(string) error { return nil },
	}
	b := newBubble(ctx, cancel, options)
	b.setState(inputState)
	return b
}

func TestApply(t *testing.T) {
	Convey("Given a bubble processing two links", t, func() {
		b := newTestBubble()
		b.begin(media.CandidateSet{"https://www.tiktok.com/@a/video/1", "https://www.tiktok.com/@b/video/2"})

		Convey("Entries start pending", func() {
			So(b.entries, ShouldHaveLength, 2)
			So(b.entries[1].status, ShouldEqual, media.Pending)
		})

		Convey("Item status moves an entry in flight", func() {
			So(b.apply(itemStatusMsg{index: 1, message: "Retrying (2/3)"}), ShouldBeTrue)
			So(b.entries[1].status, ShouldEqual, media.InFlight)
			So(b.entries[1].message, ShouldEqual, "Retrying (2/3)")
		})

		Convey("Resolution and failure are terminal", func() {
			record := &media.Record{ID: "1", Title: "Dance", Author: "a", Index: 1}
			b.apply(itemResolvedMsg{index: 1, record: record})
			b.apply(itemFailedMsg{index: 2})

			So(b.entries[1].status, ShouldEqual, media.Succeeded)
			So(b.entries[2].status, ShouldEqual, media.Failed)
			So(b.statusOf(media.Succeeded), ShouldEqual, 1)

			item := &listItem{internal: b.entries[1]}
			So(item.Title(), ShouldEqual, "1. Dance")
			So(item.Description(), ShouldContainSubstring, "@a")
		})

		Convey("Progress and status are kept for the header", func() {
			b.apply(progressMsg{current: 1, total: 2})
			b.apply(statusMsg{message: "Processing 1 of 2", severity: report.Primary})
			So(b.progress, ShouldEqual, 0.5)
			So(b.status.message, ShouldEqual, "Processing 1 of 2")
		})

		Convey("Other messages are not events", func() {
			So(b.apply(tea.WindowSizeMsg{}), ShouldBeFalse)
		})
	})
}

func TestChannelReporter(t *testing.T) {
	Convey("Given a reporter over a channel", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		events := make(chan tea.Msg, 1)
		rep := channelReporter{ctx: ctx, events: events}

		Convey("Notifications become messages", func() {
			rep.OnItemFailed(3)
			So(<-events, ShouldResemble, itemFailedMsg{index: 3})
		})

		Convey("Sends give up once the context is done", func() {
			events <- progressMsg{}
			cancel()
			So(func() { rep.OnProgress(1, 1) }, ShouldNotPanic)
		})
	})
}

func TestInput(t *testing.T) {
	Convey("Given the input state", t, func() {
		b := newTestBubble()

		Convey("Typing updates the counter", func() {
			b.inputC.SetValue("https://www.tiktok.com/@a/video/1 https://www.tiktok.com/@a/video/1")
			b.updateInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")})
			So(b.found, ShouldEqual, 1)
		})

		Convey("Extracting text without links stays on the input", func() {
			b.inputC.SetValue("nothing to see")
			cmd := b.updateInput(tea.KeyMsg{Type: tea.KeyEnter})
			So(cmd, ShouldNotBeNil)
			So(b.state, ShouldEqual, inputState)
		})
	})
}

func TestDescribeDownloads(t *testing.T) {
	Convey("Download summaries", t, func() {
		So(describeDownloads([]download.Outcome{{Kind: download.Saved}}), ShouldEqual, "Downloaded")
		So(describeDownloads([]download.Outcome{{Kind: download.Saved}, {Kind: download.Saved}}), ShouldContainSubstring, "All downloaded")
		So(describeDownloads([]download.Outcome{{Kind: download.Saved}, {Kind: download.OpenedExternally}}), ShouldContainSubstring, "1 video opened in browser")
		So(describeDownloads([]download.Outcome{{Kind: download.Saved}, {Kind: download.Interrupted}}), ShouldContainSubstring, "Downloads interrupted")
	})
}

func TestBusyInput(t *testing.T) {
	clearKey := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}

	Convey("Given a run that has just started", t, func() {
		b := newTestBubble()
		b.inputC.SetValue("https://www.tiktok.com/@a/video/1234567 https://www.tiktok.com/@b/video/7654321")
		b.Update(tea.KeyMsg{Type: tea.KeyEnter})

		So(b.state, ShouldEqual, processingState)
		So(b.busy, ShouldBeTrue)
		So(b.entries, ShouldHaveLength, 2)

		Convey("Keys are dropped while it runs", func() {
			b.Update(clearKey)
			b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			So(b.state, ShouldEqual, processingState)
			So(b.entries, ShouldHaveLength, 2)
			So(b.busy, ShouldBeTrue)
		})

		Convey("The end of the run shows results and accepts keys again", func() {
			b.Update(runDoneMsg{})
			So(b.state, ShouldEqual, resultsState)
			So(b.busy, ShouldBeFalse)

			b.Update(clearKey)
			So(b.state, ShouldEqual, inputState)
			So(b.entries, ShouldBeEmpty)
		})
	})

	Convey("Given results with a download in progress", t, func() {
		b := newTestBubble()
		b.begin(media.CandidateSet{"https://www.tiktok.com/@a/video/1234567"})
		b.setState(resultsState)
		b.busy = true

		Convey("Keys are dropped until the download finishes", func() {
			b.Update(clearKey)
			So(b.state, ShouldEqual, resultsState)
			So(b.entries, ShouldHaveLength, 1)

			b.Update(downloadsDoneMsg{outcomes: []download.Outcome{{Kind: download.Saved}}})
			So(b.busy, ShouldBeFalse)

			b.Update(clearKey)
			So(b.state, ShouldEqual, inputState)
		})
	})
}
