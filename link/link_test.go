package link

import (
	"fmt"
	"strings"
	"testing"

	"github.com/clipdrop/clipdrop/media"
	. "github.com/smartystreets/goconvey/convey"
)

func links(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://www.tiktok.com/@user/video/73100000000000000%02d", i)
	}
	return out
}

func TestExtract(t *testing.T) {
	Convey("Given text with mixed links", t, func() {
		text := `check these out:
https://vm.tiktok.com/ZMabcdef1/ and "https://www.tiktok.com/@cat/video/7312345678901234567",
also https://vm.tiktok.com/ZMabcdef1/ again, plus https://youtube.com/watch?v=nope`

		Convey("It keeps unique links in first-seen order", func() {
			set, cond := Extract(text)
			So(cond, ShouldEqual, Ok)
			So(set, ShouldResemble, media.CandidateSet{
				"https://vm.tiktok.com/ZMabcdef1/",
				"https://www.tiktok.com/@cat/video/7312345678901234567",
			})
		})

		Convey("It is deterministic", func() {
			a, ca := Extract(text)
			b, cb := Extract(text)
			So(a, ShouldResemble, b)
			So(ca, ShouldEqual, cb)
		})
	})

	Convey("Given 12 distinct links", t, func() {
		all := links(12)
		set, cond := Extract(strings.Join(all, "\n"))

		Convey("It returns the first 10 and signals truncation", func() {
			So(cond, ShouldEqual, Truncated)
			So(set, ShouldHaveLength, MaxLinks)
			So(set.Strings(), ShouldResemble, all[:10])
		})

		Convey("Count reports the uncapped total", func() {
			So(Count(strings.Join(all, " ")), ShouldEqual, 12)
		})

		Convey("ExtractN honors a custom cap", func() {
			set, cond := ExtractN(strings.Join(all, " "), 3)
			So(cond, ShouldEqual, Truncated)
			So(set, ShouldHaveLength, 3)
		})
	})

	Convey("Given a truncated share link", t, func() {
		set, cond := Extract("abc https://vt.tiktok.com/ZShort/")

		Convey("The match is discarded", func() {
			So(set, ShouldBeEmpty)
			So(cond, ShouldEqual, Empty)
		})
	})

	Convey("Given arbitrary inputs", t, func() {
		inputs := []string{
			"",
			"no links here",
			strings.Repeat("https://vm.tiktok.com/ZMabcdef1/ ", 30),
			strings.Join(links(25), ","),
			strings.Join(append(links(5), links(5)...), "\t"),
		}

		Convey("Results never contain duplicates or exceed the cap", func() {
			for _, in := range inputs {
				set, _ := Extract(in)
				So(len(set), ShouldBeLessThanOrEqualTo, MaxLinks)

				seen := make(map[media.Link]bool)
				for _, l := range set {
					So(seen[l], ShouldBeFalse)
					seen[l] = true
				}
			}
		})
	})

	Convey("Plausible", t, func() {
		So(Plausible("https://vm.tiktok.com/ZMabcdef1/"), ShouldBeTrue)
		So(Plausible("http://tiktok.com/x"), ShouldBeFalse)
		So(Plausible("https://example.com/averylongpath"), ShouldBeFalse)
	})

	Convey("Condition names", t, func() {
		So(Truncated.String(), ShouldEqual, "truncated")
	})
}
