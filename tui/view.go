// Package tui provides the interactive terminal front end.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/clipdrop/clipdrop/icon"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/style"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// headerHeight is the number of lines drawn above the list in the processing and results views.
const headerHeight = 4

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case inputState:
		output = b.viewInput()
	case processingState, resultsState:
		output = b.viewItems()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewInput() string {
	counter := fmt.Sprintf("%d / %d found", b.found, limit())
	switch {
	case b.found > limit():
		counter = style.Warning(counter + ", extra links will be dropped")
	case b.found > 0:
		counter = style.Success(counter)
	default:
		counter = style.Faint(counter)
	}

	return b.renderLines(true, []string{
		style.Title("Paste Links"),
		"",
		b.inputC.View(),
		"",
		icon.Get(icon.Link) + " " + counter,
	})
}

func (b *statefulBubble) viewItems() string {
	status := b.renderStatus()
	if b.loading {
		status = b.spinnerC.View() + " " + status
	}

	summary := style.Faint(fmt.Sprintf("%d ready, %d failed, %d of %d done",
		b.statusOf(media.Succeeded),
		b.statusOf(media.Failed),
		b.statusOf(media.Succeeded)+b.statusOf(media.Failed),
		len(b.entries),
	))

	header := strings.Join([]string{
		style.Truncate(b.width)(status),
		b.progressC.ViewAs(b.progress),
		summary,
		"",
	}, "\n")

	return listExtraPaddingStyle.Render(header + "\n" + b.itemsC.View())
}

func (b *statefulBubble) renderStatus() string {
	message := strings.ToUpper(b.status.message)
	switch b.status.severity {
	case report.Primary:
		return style.Primary(message)
	case report.Success:
		return style.Success(message)
	case report.Error:
		return style.Danger(message)
	default:
		return style.Faint(message)
	}
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorMsg := wrap.String(errorStyle.Render(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	l := strings.Join(lines, "\n")
	h := lipgloss.Height(l)
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
