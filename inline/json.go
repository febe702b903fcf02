// Package inline runs extraction without the TUI, for scripts and pipes.
package inline

import (
	"encoding/json"
	"io"

	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/link"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/queue"
	"github.com/samber/lo"
)

// Item is one pasted link and how its resolution ended.
type Item struct {
	Index    int           `json:"index"`
	Link     string        `json:"link" jsonschema:"format=uri"`
	Status   string        `json:"status" jsonschema:"enum=pending,enum=in flight,enum=succeeded,enum=failed"`
	Attempts int           `json:"attempts"`
	Record   *media.Record `json:"record,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// Download is the outcome of one file download.
type Download struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Kind  string `json:"kind" jsonschema:"enum=saved,enum=opened externally,enum=interrupted"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

// Output is the document printed with --json.
type Output struct {
	Links     []string      `json:"links"`
	Truncated bool          `json:"truncated"`
	Items     []*Item       `json:"items"`
	Summary   queue.Summary `json:"summary"`
	Downloads []*Download   `json:"downloads,omitempty"`
}

func newOutput(candidates media.CandidateSet, condition link.Condition, items []*media.Item, outcomes []download.Outcome) *Output {
	return &Output{
		Links:     lo.Ternary(candidates == nil, []string{}, candidates.Strings()),
		Truncated: condition == link.Truncated,
		Items: lo.Map(items, func(item *media.Item, _ int) *Item {
			out := &Item{
				Index:    item.Index,
				Link:     item.Link.String(),
				Status:   item.Status.String(),
				Attempts: item.Attempt,
				Record:   item.Record,
			}
			if item.Err != nil {
				out.Error = item.Err.Error()
			}
			return out
		}),
		Summary: queue.Summarize(items),
		Downloads: lo.Map(outcomes, func(o download.Outcome, _ int) *Download {
			out := &Download{Index: o.Index, ID: o.ID, Kind: o.Kind.String(), Path: o.Path}
			if o.Err != nil {
				out.Error = o.Err.Error()
			}
			return out
		}),
	}
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
