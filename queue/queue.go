// Package queue resolves a candidate set strictly one link at a time, pacing requests for the API's rate limit.
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/clipdrop/clipdrop/config"
	"github.com/clipdrop/clipdrop/key"
	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/session"
	"github.com/clipdrop/clipdrop/util"
)

// DefaultDelay is the pause between two resolutions.
const DefaultDelay = 300 * time.Millisecond

// Resolver is the per-link resolution step. All retrying happens behind it.
type Resolver interface {
	Resolve(ctx context.Context, link media.Link, index int, onStatus func(string)) (*media.Record, error)
}

// Runner drives a Resolver over a candidate set.
type Runner struct {
	Resolver Resolver
	State    *session.State

	// Delay is the pause between items. Zero means DefaultDelay, negative means none.
	Delay time.Duration

	// Sleep waits between items. Tests replace it to observe the pacing.
	Sleep func(ctx context.Context, d time.Duration) error
}

// New returns a runner writing into state, paced by queue.delay_ms.
func New(resolver Resolver, state *session.State) *Runner {
	return &Runner{
		Resolver: resolver,
		State:    state,
		Delay:    config.Pause(key.QueueDelayMs),
	}
}

// Summary counts the outcomes of a run.
type Summary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Summarize counts terminal states in items.
func Summarize(items []*media.Item) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case media.Succeeded:
			s.Succeeded++
		case media.Failed:
			s.Failed++
		}
	}
	return s
}

func (r *Runner) delay() time.Duration {
	return util.Pacing(r.Delay, DefaultDelay)
}

func (r *Runner) sleep(ctx context.Context, d time.Duration) error {
	if r.Sleep != nil {
		return r.Sleep(ctx, d)
	}
	return util.Sleep(ctx, d)
}

// Run resolves every candidate in order. Item i+1 is never started before item i has finished,
// and a failed item never stops the run. Successful records are appended to the runner's state.
//
// The run ends early only when ctx does; items not reached stay Pending.
func (r *Runner) Run(ctx context.Context, candidates media.CandidateSet, rep report.Reporter) []*media.Item {
	rep = report.OrNop(rep)
	if r.State == nil {
		r.State = session.New()
	}

	items := r.State.Begin(candidates)
	total := len(items)
	if total == 0 {
		rep.OnStatus("No URLs found to process", report.Error)
		return items
	}

	log.Infof("processing %s", util.Quantify(total, "link", "links"))

	for i, item := range items {
		rep.OnProgress(i+1, total)
		rep.OnStatus(fmt.Sprintf("Processing %d of %d", i+1, total), report.Primary)

		r.process(ctx, item, rep)

		if ctx.Err() != nil {
			rep.OnStatus("Processing interrupted", report.Error)
			return items
		}

		if i < total-1 {
			if err := r.sleep(ctx, r.delay()); err != nil {
				rep.OnStatus("Processing interrupted", report.Error)
				return items
			}
		}
	}

	summary := Summarize(items)
	log.With(log.Fields{"succeeded": summary.Succeeded, "failed": summary.Failed}).Info("processing complete")

	msg := "Processing complete"
	if summary.Failed > 0 {
		msg = fmt.Sprintf("Processing complete, %d of %d failed", summary.Failed, summary.Total)
	}
	rep.OnStatus(msg, report.Success)

	return items
}

func (r *Runner) process(ctx context.Context, item *media.Item, rep report.Reporter) {
	fields := log.Fields{"item": item.Index, "link": item.Link}
	transition := func(err error) {
		if err != nil {
			log.With(fields).Warn(err)
		}
	}

	attempt := 0
	onStatus := func(msg string) {
		attempt++
		transition(item.Start(attempt))
		rep.OnItemStatus(item.Index, msg)
	}

	record, err := r.Resolver.Resolve(ctx, item.Link, item.Index, onStatus)
	if err != nil {
		if item.Status == media.Pending {
			transition(item.Start(1))
		}
		transition(item.Fail(err))
		rep.OnItemFailed(item.Index)
		return
	}

	if err := item.Succeed(record); err != nil {
		transition(err)
		return
	}
	r.State.Resolved(record)
	rep.OnItemResolved(item.Index, record)
}
