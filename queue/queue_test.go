package queue

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/session"
	. "github.com/smartystreets/goconvey/convey"
)

// stubResolver fails the links listed in fail and records the call order.
type stubResolver struct {
	fail     map[media.Link]bool
	calls    []media.Link
	inFlight int
	overlap  bool
}

func (s *stubResolver) Resolve(_ context.Context, link media.Link, index int, onStatus func(string)) (*media.Record, error) {
	s.inFlight++
	defer func() { s.inFlight-- }()
	if s.inFlight > 1 {
		s.overlap = true
	}

	s.calls = append(s.calls, link)
	onStatus("Fetching")
	if s.fail[link] {
		onStatus("Retrying (2/3)")
		onStatus("Retrying (3/3)")
		return nil, errors.New("rejected")
	}
	return &media.Record{ID: string(link), Title: "t", Source: link, Index: index}, nil
}

type recorder struct {
	progress []int
	resolved []int
	failed   []int
	statuses []string
	items    map[int][]string
}

func (r *recorder) reporter() report.Reporter {
	r.items = make(map[int][]string)
	return report.Funcs{
		Status:       func(msg string, _ report.Severity) { r.statuses = append(r.statuses, msg) },
		ItemStatus:   func(i int, msg string) { r.items[i] = append(r.items[i], msg) },
		ItemResolved: func(i int, _ *media.Record) { r.resolved = append(r.resolved, i) },
		ItemFailed:   func(i int) { r.failed = append(r.failed, i) },
		Progress:     func(current, _ int) { r.progress = append(r.progress, current) },
	}
}

var candidates = media.CandidateSet{
	"https://vm.tiktok.com/ZMaaaaaaa1/",
	"https://vm.tiktok.com/ZMaaaaaaa2/",
	"https://vm.tiktok.com/ZMaaaaaaa3/",
}

func TestRun(t *testing.T) {
	Convey("Given three candidates where the second always fails", t, func() {
		resolver := &stubResolver{fail: map[media.Link]bool{candidates[1]: true}}
		state := session.New()
		var waits []time.Duration
		runner := &Runner{
			Resolver: resolver,
			State:    state,
			Delay:    DefaultDelay,
			Sleep: func(_ context.Context, d time.Duration) error {
				waits = append(waits, d)
				return nil
			},
		}
		rec := &recorder{}

		items := runner.Run(context.Background(), candidates, rec.reporter())

		Convey("Every item is processed in order, one at a time", func() {
			So(resolver.calls, ShouldResemble, []media.Link(candidates))
			So(resolver.overlap, ShouldBeFalse)
		})

		Convey("Two succeed and one fails", func() {
			So(items[0].Status, ShouldEqual, media.Succeeded)
			So(items[1].Status, ShouldEqual, media.Failed)
			So(items[2].Status, ShouldEqual, media.Succeeded)
			So(Summarize(items), ShouldResemble, Summary{Total: 3, Succeeded: 2, Failed: 1})
			So(rec.resolved, ShouldResemble, []int{1, 3})
			So(rec.failed, ShouldResemble, []int{2})
		})

		Convey("Progress is reported three times with increasing values", func() {
			So(rec.progress, ShouldResemble, []int{1, 2, 3})
		})

		Convey("The pause happens between items only", func() {
			So(waits, ShouldResemble, []time.Duration{DefaultDelay, DefaultDelay})
		})

		Convey("Successes land in the session in arrival order", func() {
			records := state.Records()
			So(records, ShouldHaveLength, 2)
			So(records[0].Source, ShouldEqual, candidates[0])
			So(records[1].Source, ShouldEqual, candidates[2])
		})

		Convey("Per-item statuses and attempts are tracked", func() {
			So(rec.items[2], ShouldResemble, []string{"Fetching", "Retrying (2/3)", "Retrying (3/3)"})
			So(items[1].Attempt, ShouldEqual, 3)
		})

		Convey("The run finishes as complete even with a failure", func() {
			So(rec.statuses[0], ShouldEqual, "Processing 1 of 3")
			So(rec.statuses[len(rec.statuses)-1], ShouldEqual, "Processing complete, 1 of 3 failed")
		})
	})

	Convey("Given no candidates", t, func() {
		rec := &recorder{}
		runner := &Runner{Resolver: &stubResolver{}}
		items := runner.Run(context.Background(), nil, rec.reporter())

		Convey("Nothing runs and the caller is told", func() {
			So(items, ShouldBeEmpty)
			So(rec.progress, ShouldBeEmpty)
			So(rec.statuses, ShouldResemble, []string{"No URLs found to process"})
		})
	})

	Convey("Given a context that ends during pacing", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		runner := &Runner{
			Resolver: &stubResolver{},
			Sleep: func(ctx context.Context, _ time.Duration) error {
				cancel()
				return ctx.Err()
			},
		}

		items := runner.Run(ctx, candidates, nil)

		Convey("Unreached items stay pending", func() {
			So(items[0].Status, ShouldEqual, media.Succeeded)
			So(items[1].Status, ShouldEqual, media.Pending)
			So(items[2].Status, ShouldEqual, media.Pending)
		})
	})
}

func TestRunDelayDefaults(t *testing.T) {
	Convey("Given a runner built without a Delay", t, func() {
		var waits []time.Duration
		runner := &Runner{
			Resolver: &stubResolver{},
			Sleep: func(_ context.Context, d time.Duration) error {
				waits = append(waits, d)
				return nil
			},
		}

		runner.Run(context.Background(), candidates, nil)

		Convey("It still paces items with DefaultDelay", func() {
			So(waits, ShouldResemble, []time.Duration{DefaultDelay, DefaultDelay})
		})
	})

	Convey("Given a runner with a negative Delay", t, func() {
		var waits []time.Duration
		runner := &Runner{
			Resolver: &stubResolver{},
			Delay:    -1,
			Sleep: func(_ context.Context, d time.Duration) error {
				waits = append(waits, d)
				return nil
			},
		}

		runner.Run(context.Background(), candidates, nil)

		Convey("Items follow each other without a pause", func() {
			So(waits, ShouldResemble, []time.Duration{0, 0})
		})
	})
}

func TestProcessRejectedTransitions(t *testing.T) {
	Convey("Given an item that already finished", t, func() {
		var buf bytes.Buffer
		log.SetOutput(&buf)

		item := &media.Item{Index: 5, Link: candidates[0]}
		So(item.Start(1), ShouldBeNil)
		So(item.Fail(errors.New("gone")), ShouldBeNil)

		runner := &Runner{Resolver: &stubResolver{}, State: session.New()}
		rec := &recorder{}
		runner.process(context.Background(), item, rec.reporter())

		Convey("The refused transitions are logged and the item keeps its status", func() {
			So(item.Status, ShouldEqual, media.Failed)
			So(buf.String(), ShouldContainSubstring, "illegal transition")
			So(buf.String(), ShouldContainSubstring, "item=5")
			So(runner.State.Records(), ShouldBeEmpty)
			So(rec.resolved, ShouldBeEmpty)
		})
	})
}
