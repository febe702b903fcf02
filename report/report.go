// Package report carries progress and status notifications from the core to whatever renders them.
package report

import "github.com/clipdrop/clipdrop/media"

// Severity classifies a status message.
type Severity int

const (
	Secondary Severity = iota
	Primary
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Primary:
		return "primary"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "secondary"
	}
}

// Reporter receives notifications from the queue runner, the resolver and the download orchestrator.
// Implementations must not block for long; they are called inline on the run's goroutine.
type Reporter interface {
	OnStatus(message string, severity Severity)
	OnItemStatus(index int, message string)
	OnItemResolved(index int, record *media.Record)
	OnItemFailed(index int)
	OnProgress(current, total int)
}

// Nop ignores every notification.
type Nop struct{}

func (Nop) OnStatus(string, Severity) {}
func (Nop) OnItemStatus(int, string) {}
func (Nop) OnItemResolved(int, *media.Record) {}
func (Nop) OnItemFailed(int) {}
func (Nop) OnProgress(int, int) {}

// Funcs adapts optional callbacks to a Reporter. Nil fields are skipped.
type Funcs struct {
	Status       func(message string, severity Severity)
	ItemStatus   func(index int, message string)
	ItemResolved func(index int, record *media.Record)
	ItemFailed   func(index int)
	Progress     func(current, total int)
}

func (f Funcs) OnStatus(message string, severity Severity) {
	if f.Status != nil {
		f.Status(message, severity)
	}
}

func (f Funcs) OnItemStatus(index int, message string) {
	if f.ItemStatus != nil {
		f.ItemStatus(index, message)
	}
}

func (f Funcs) OnItemResolved(index int, record *media.Record) {
	if f.ItemResolved != nil {
		f.ItemResolved(index, record)
	}
}

func (f Funcs) OnItemFailed(index int) {
	if f.ItemFailed != nil {
		f.ItemFailed(index)
	}
}

func (f Funcs) OnProgress(current, total int) {
	if f.Progress != nil {
		f.Progress(current, total)
	}
}

// Multi fans every notification out to each reporter in order.
type Multi []Reporter

func (m Multi) OnStatus(message string, severity Severity) {
	for _, r := range m {
		r.OnStatus(message, severity)
	}
}

func (m Multi) OnItemStatus(index int, message string) {
	for _, r := range m {
		r.OnItemStatus(index, message)
	}
}

func (m Multi) OnItemResolved(index int, record *media.Record) {
	for _, r := range m {
		r.OnItemResolved(index, record)
	}
}

func (m Multi) OnItemFailed(index int) {
	for _, r := range m {
		r.OnItemFailed(index)
	}
}

func (m Multi) OnProgress(current, total int) {
	for _, r := range m {
		r.OnProgress(current, total)
	}
}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}
