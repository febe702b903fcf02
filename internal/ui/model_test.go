package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		m := &Model{}

		Convey("A notification is shown and a clear is scheduled", func() {
			cmd := m.Update(NotificationMsg("All downloaded"))
			So(cmd, ShouldNotBeNil)
			So(m.Notification(), ShouldEqual, "All downloaded")
			So(m.View("a\nb"), ShouldContainSubstring, "b  \033[90mAll downloaded")

			Convey("The matching clear removes it", func() {
				m.Update(ClearNotificationMsg{generation: 1})
				So(m.Notification(), ShouldBeEmpty)
				So(m.View("a\nb"), ShouldEqual, "a\nb")
			})

			Convey("A stale clear keeps a newer notification", func() {
				m.Update(NotificationMsg("Downloaded"))
				m.Update(ClearNotificationMsg{generation: 1})
				So(m.Notification(), ShouldEqual, "Downloaded")
			})
		})

		Convey("Notify produces the message", func() {
			So(Notify("hi")(), ShouldEqual, NotificationMsg("hi"))
		})
	})
}
