package session

import (
	"testing"

	"github.com/clipdrop/clipdrop/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestState(t *testing.T) {
	Convey("Given a state that began a run", t, func() {
		s := New()
		items := s.Begin(media.CandidateSet{"https://vm.tiktok.com/ZMaaaaaaa1/", "https://vm.tiktok.com/ZMaaaaaaa2/"})

		Convey("Every item is pending with a 1-based index", func() {
			So(items, ShouldHaveLength, 2)
			So(items[0].Status, ShouldEqual, media.Pending)
			So(items[1].Index, ShouldEqual, 2)
			item, ok := s.Item(2)
			So(ok, ShouldBeTrue)
			So(item, ShouldEqual, items[1])
			_, ok = s.Item(3)
			So(ok, ShouldBeFalse)
		})

		Convey("Records accumulate in arrival order", func() {
			s.Resolved(&media.Record{ID: "b"})
			s.Resolved(&media.Record{ID: "a"})
			ids := []string{s.Records()[0].ID, s.Records()[1].ID}
			So(ids, ShouldResemble, []string{"b", "a"})
		})

		Convey("Snapshots are copies", func() {
			s.Resolved(&media.Record{ID: "x"})
			snap := s.Records()
			snap[0] = nil
			So(s.Records()[0], ShouldNotBeNil)
		})

		Convey("A new run starts clean", func() {
			s.Resolved(&media.Record{ID: "x"})
			s.Begin(media.CandidateSet{"https://vm.tiktok.com/ZMaaaaaaa3/"})
			So(s.Records(), ShouldBeEmpty)
			So(s.Candidates(), ShouldHaveLength, 1)
		})

		Convey("Reset empties everything", func() {
			s.Reset()
			So(s.Items(), ShouldBeEmpty)
			So(s.Candidates(), ShouldBeEmpty)
			So(s.Records(), ShouldBeEmpty)
		})
	})
}
