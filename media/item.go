// Package media defines the domain models shared by extraction, resolution and download.
package media

import "fmt"

// Status is the resolution state of a queue item.
type Status int

const (
	Pending Status = iota
	InFlight
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case InFlight:
		return "in flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == Succeeded || s == Failed
}

// Item pairs a link with its resolution outcome.
type Item struct {
	Link    Link    `json:"link"`
	Index   int     `json:"index"`
	Status  Status  `json:"status"`
	Attempt int     `json:"attempt,omitempty"`
	Record  *Record `json:"record,omitempty"`
	Err     error   `json:"-"`
}

// NewItem returns a pending item for the link at the 1-based index.
func NewItem(link Link, index int) *Item {
	return &Item{Link: link, Index: index, Status: Pending}
}

// Start marks the item in flight for the given attempt.
func (i *Item) Start(attempt int) error {
	if err := i.advance(InFlight); err != nil {
		return err
	}
	i.Attempt = attempt
	return nil
}

// Succeed stores the resolved record.
func (i *Item) Succeed(record *Record) error {
	if err := i.advance(Succeeded); err != nil {
		return err
	}
	i.Record = record
	return nil
}

// Fail records the terminal error.
func (i *Item) Fail(err error) error {
	if err := i.advance(Failed); err != nil {
		return err
	}
	i.Err = err
	return nil
}

// advance moves to next, refusing regressions. Re-entering InFlight is allowed for retries.
func (i *Item) advance(next Status) error {
	if next < i.Status || i.Status.Terminal() {
		return fmt.Errorf("item %d: illegal transition %s -> %s", i.Index, i.Status, next)
	}
	i.Status = next
	return nil
}
