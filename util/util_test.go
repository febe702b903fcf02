package util

import (
	"context"
	"testing"
	"time"

	"github.com/clipdrop/clipdrop/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("élan"), ShouldEqual, "Élan")
	})
}

func TestSleep(t *testing.T) {
	Convey("Sleep", t, func() {
		Convey("Should wait for the duration", func() {
			start := time.Now()
			So(Sleep(context.Background(), 20*time.Millisecond), ShouldBeNil)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 20*time.Millisecond)
		})

		Convey("Should return early when the context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			So(Sleep(ctx, time.Hour), ShouldEqual, context.Canceled)
		})

		Convey("Should not wait for zero durations", func() {
			So(Sleep(context.Background(), 0), ShouldBeNil)
		})
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/clipdrop/sub", 0755), ShouldBeNil)
		So(fs.WriteFile("/tmp/clipdrop/sub/a.mp4", []byte("x"), 0644), ShouldBeNil)

		So(Delete("/tmp/clipdrop/sub/a.mp4"), ShouldBeNil)
		So(Delete("/tmp/clipdrop"), ShouldBeNil)
		exists, _ := fs.Exists("/tmp/clipdrop")
		So(exists, ShouldBeFalse)
		So(Delete("/tmp/missing"), ShouldNotBeNil)
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max[int](), ShouldEqual, 0)
		So(Max(-3, -7), ShouldEqual, -3)
	})
}

func TestPacing(t *testing.T) {
	Convey("Pacing", t, func() {
		So(Pacing(0, time.Second), ShouldEqual, time.Second)
		So(Pacing(-1, time.Second), ShouldEqual, time.Duration(0))
		So(Pacing(250*time.Millisecond, time.Second), ShouldEqual, 250*time.Millisecond)
	})
}
