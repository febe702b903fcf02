package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipdrop/clipdrop/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestAPI(t *testing.T) {
	Convey("API client selection", t, func() {
		Convey("Defaults to the shared client", func() {
			viper.Set(key.NetworkFingerprint, false)
			So(API(), ShouldEqual, Client)
		})

		Convey("Uses the browser transport when fingerprinting", func() {
			viper.Set(key.NetworkFingerprint, true)
			_, ok := API().Transport.(*BrowserTransport)
			So(ok, ShouldBeTrue)
		})

		Reset(func() {
			viper.Set(key.NetworkFingerprint, false)
		})
	})
}

func TestBrowserTransportPlainHTTP(t *testing.T) {
	Convey("Given a plain http server", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
		defer srv.Close()

		Convey("Requests go through the http/1.1 leg", func() {
			client := &http.Client{Transport: NewBrowserTransport()}
			resp, err := client.Get(srv.URL)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusTeapot)
		})
	})
}
