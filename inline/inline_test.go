package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/clipdrop/clipdrop/download"
	"github.com/clipdrop/clipdrop/media"
	"github.com/clipdrop/clipdrop/queue"
	"github.com/clipdrop/clipdrop/report"
	"github.com/clipdrop/clipdrop/session"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type stubResolver struct {
	fail map[int]bool
}

func (s stubResolver) Resolve(_ context.Context, l media.Link, index int, onStatus func(string)) (*media.Record, error) {
	onStatus("Fetching")
	if s.fail[index] {
		return nil, errors.New("rejected")
	}
	return &media.Record{
		ID:     fmt.Sprint(index),
		Title:  fmt.Sprintf("Video %d", index),
		Author: "someone",
		Play:   fmt.Sprintf("https://cdn.example.com/%d.mp4", index),
		Source: l,
		Index:  index,
	}, nil
}

type stubDownloader struct {
	got []*media.Record
}

func (s *stubDownloader) All(_ context.Context, records []*media.Record, _ report.Reporter) []download.Outcome {
	s.got = records
	outcomes := make([]download.Outcome, len(records))
	for i, r := range records {
		outcomes[i] = download.Outcome{Index: r.Index, ID: r.ID, Kind: download.Saved, Path: "/tmp/" + r.ID}
	}
	return outcomes
}

func newRunner(fail ...int) *queue.Runner {
	failing := make(map[int]bool)
	for _, i := range fail {
		failing[i] = true
	}
	return &queue.Runner{
		Resolver: stubResolver{fail: failing},
		State:    session.New(),
		Sleep:    func(context.Context, time.Duration) error { return nil },
	}
}

const pasted = `look https://www.tiktok.com/@a/video/111111
and https://vm.tiktok.com/ZMabcdef1/ then https://www.tiktok.com/@b/video/333333`

func TestRun(t *testing.T) {
	Convey("Given pasted text with three links where the second fails", t, func() {
		var buf bytes.Buffer
		downloader := &stubDownloader{}
		options := &Options{
			Out:        &buf,
			Text:       pasted,
			Runner:     newRunner(2),
			Downloader: downloader,
		}

		Convey("Plain output lists media URLs of the resolved records", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldResemble, []string{
				"https://cdn.example.com/1.mp4",
				"https://cdn.example.com/3.mp4",
			})
			So(downloader.got, ShouldBeNil)
		})

		Convey("JSON output describes every item", func() {
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Links, ShouldHaveLength, 3)
			So(output.Items, ShouldHaveLength, 3)
			So(output.Items[1].Status, ShouldEqual, "failed")
			So(output.Items[1].Error, ShouldEqual, "rejected")
			So(output.Summary, ShouldResemble, queue.Summary{Total: 3, Succeeded: 2, Failed: 1})
			So(output.Downloads, ShouldBeEmpty)
		})

		Convey("Download hands every record to the downloader", func() {
			options.Download = true
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)
			So(downloader.got, ShouldHaveLength, 2)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Downloads, ShouldHaveLength, 2)
			So(output.Downloads[1].Index, ShouldEqual, 3)
			So(output.Downloads[1].Kind, ShouldEqual, "saved")
		})

		Convey("A declined confirmation skips downloads", func() {
			asked := 0
			options.Confirm = mo.Some(func(count int) bool {
				asked = count
				return false
			})
			So(Run(context.Background(), options), ShouldBeNil)
			So(asked, ShouldEqual, 2)
			So(downloader.got, ShouldBeNil)
		})

		Convey("A filter narrows output and downloads", func() {
			filter, err := ParseFilter("last")
			So(err, ShouldBeNil)
			options.Filter = mo.Some(filter)
			options.Download = true
			options.Json = true

			So(Run(context.Background(), options), ShouldBeNil)
			So(downloader.got, ShouldHaveLength, 1)
			So(downloader.got[0].Index, ShouldEqual, 3)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Items, ShouldHaveLength, 2)
		})
	})

	Convey("Given text without links", t, func() {
		var buf bytes.Buffer
		options := &Options{Out: &buf, Text: "nothing here", Json: true, Runner: newRunner()}

		Convey("An empty document is printed", func() {
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Links, ShouldBeEmpty)
			So(output.Items, ShouldBeEmpty)
			So(output.Summary.Total, ShouldEqual, 0)
		})
	})
}

func TestParseFilter(t *testing.T) {
	records := []*media.Record{{Index: 1}, {Index: 3}, {Index: 4}, {Index: 7}}

	Convey("Given resolved records", t, func() {
		Convey("A range selects by pasted position", func() {
			filter, err := ParseFilter("3-4")
			So(err, ShouldBeNil)
			got, _ := filter(records)
			So(got, ShouldHaveLength, 2)
			So(got[0].Index, ShouldEqual, 3)
		})

		Convey("A single number selects one position", func() {
			filter, err := ParseFilter("7")
			So(err, ShouldBeNil)
			got, _ := filter(records)
			So(got, ShouldHaveLength, 1)
		})

		Convey("All and first work", func() {
			all, _ := ParseFilter("all")
			got, _ := all(records)
			So(got, ShouldHaveLength, 4)

			first, _ := ParseFilter("first")
			got, _ = first(records)
			So(got[0].Index, ShouldEqual, 1)
		})

		Convey("Malformed selections are rejected", func() {
			for _, bad := range []string{"0", "5-2", "x", "1-y"} {
				_, err := ParseFilter(bad)
				So(err, ShouldNotBeNil)
			}
		})
	})
}
