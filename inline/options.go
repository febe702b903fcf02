// Package inline runs extraction without the TUI, for scripts and pipes.
package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/queue"
	"github.com/clipdrop/clipdrop/report"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// RecordFilter narrows the resolved records that are printed and downloaded.
type RecordFilter func([]*media.Record) ([]*media.Record, error)

// Downloader is the batch download step.
type Downloader interface {
	All(ctx context.Context, records []*media.Record, rep report.Reporter) []download.Outcome
}

type Options struct {
	Out      io.Writer
	Text     string
	Json     bool
	Download bool
	Filter   mo.Option[RecordFilter]

	// Confirm is asked before downloading when Download is false. Absent means never download.
	Confirm mo.Option[func(count int) bool]

	// Reporter receives progress notifications, usually a console on stderr.
	Reporter report.Reporter

	Runner     *queue.Runner
	Downloader Downloader
}

// ParseFilter parses a selection of records by their position in the pasted text.
// Accepted forms: "all", "first", "last", "N" and "N-M" (inclusive).
func ParseFilter(description string) (RecordFilter, error) {
	description = strings.TrimSpace(strings.ToLower(description))

	switch description {
	case "", "all":
		return func(records []*media.Record) ([]*media.Record, error) {
			return records, nil
		}, nil
	case "first":
		return func(records []*media.Record) ([]*media.Record, error) {
			if len(records) == 0 {
				return records, nil
			}
			return records[:1], nil
		}, nil
	case "last":
		return func(records []*media.Record) ([]*media.Record, error) {
			if len(records) == 0 {
				return records, nil
			}
			return records[len(records)-1:], nil
		}, nil
	}

	from, to, err := parseRange(description)
	if err != nil {
		return nil, err
	}

	return func(records []*media.Record) ([]*media.Record, error) {
		return lo.Filter(records, func(r *media.Record, _ int) bool {
			return r.Index >= from && r.Index <= to
		}), nil
	}, nil
}

func parseRange(description string) (from, to int, err error) {
	left, right, isRange := strings.Cut(description, "-")

	from, err = strconv.Atoi(strings.TrimSpace(left))
	if err != nil || from < 1 {
		return 0, 0, fmt.Errorf("invalid selection: %q", description)
	}

	if !isRange {
		return from, from, nil
	}

	to, err = strconv.Atoi(strings.TrimSpace(right))
	if err != nil || to < from {
		return 0, 0, fmt.Errorf("invalid selection: %q", description)
	}

	return from, to, nil
}
