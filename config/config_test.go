package config

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/clipdrop/clipdrop/filesystem"
	"github.com/clipdrop/clipdrop/key"
	"github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	convey.Convey("Config Setup", t, func() {
		convey.Convey("Should initialize without error", func() {
			err := Setup()
			convey.So(err, convey.ShouldBeNil)
		})

		convey.Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				convey.So(viper.Get(name), convey.ShouldNotBeNil)
			}
			convey.So(viper.GetInt(key.ExtractMaxLinks), convey.ShouldEqual, 10)
			convey.So(viper.GetInt(key.ResolveAttempts), convey.ShouldEqual, 3)
		})

		convey.Convey("Environment variables override defaults", func() {
			t.Setenv("CLIPDROP_QUEUE_DELAY_MS", "750")
			convey.So(Setup(), convey.ShouldBeNil)
			convey.So(viper.GetInt(key.QueueDelayMs), convey.ShouldEqual, 750)
		})

		convey.Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("resolve.timeout_ms")
			convey.So(result, convey.ShouldEqual, "resolve_timeout_ms")
		})

		convey.Convey("Env should be prefixed with the app name", func() {
			f := Default[key.QueueDelayMs]
			convey.So(f.Env(), convey.ShouldEqual, "CLIPDROP_QUEUE_DELAY_MS")
		})
	})
}

func TestMillis(t *testing.T) {
	convey.Convey("Given millisecond settings", t, func() {
		convey.Convey("It converts to a duration", func() {
			viper.Set(key.ResolveTimeoutMs, 8000)
			convey.So(Millis(key.ResolveTimeoutMs), convey.ShouldEqual, 8*time.Second)
		})

		convey.Convey("Pause turns a zero setting into NoWait", func() {
			viper.Set(key.QueueDelayMs, 0)
			convey.So(Pause(key.QueueDelayMs), convey.ShouldEqual, NoWait)

			viper.Set(key.QueueDelayMs, 300)
			convey.So(Pause(key.QueueDelayMs), convey.ShouldEqual, 300*time.Millisecond)
		})

		convey.Convey("It clamps negative values", func() {
			viper.Set(key.QueueDelayMs, -5)
			convey.So(Millis(key.QueueDelayMs), convey.ShouldEqual, time.Duration(0))
		})

		convey.Reset(func() {
			viper.Set(key.ResolveTimeoutMs, Default[key.ResolveTimeoutMs].Value)
			viper.Set(key.QueueDelayMs, Default[key.QueueDelayMs].Value)
		})
	})
}

func TestEdit(t *testing.T) {
	convey.Convey("Given the config registry", t, func() {
		convey.So(Setup(), convey.ShouldBeNil)

		convey.Convey("Lookup suggests the closest key for typos", func() {
			_, err := Lookup("queue.delay_m")
			var unknown *UnknownKeyError
			convey.So(errors.As(err, &unknown), convey.ShouldBeTrue)
			convey.So(unknown.Closest, convey.ShouldEqual, key.QueueDelayMs)
		})

		convey.Convey("Parse follows the type of the default", func() {
			v, err := Parse(key.QueueDelayMs, []string{"450"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(v, convey.ShouldEqual, 450)

			v, err = Parse(key.NetworkFingerprint, []string{"true"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(v, convey.ShouldEqual, true)

			v, err = Parse(key.DownloadPrefix, []string{"clip"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(v, convey.ShouldEqual, "clip")
		})

		convey.Convey("Parse rejects bad values", func() {
			_, err := Parse(key.ResolveAttempts, []string{"three"})
			convey.So(err, convey.ShouldNotBeNil)

			_, err = Parse(key.ResolveAttempts, []string{"-1"})
			convey.So(err, convey.ShouldNotBeNil)

			_, err = Parse(key.LogsJson, nil)
			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("Reset restores defaults", func() {
			viper.Set(key.DownloadPrefix, "other")
			convey.So(Reset(key.DownloadPrefix), convey.ShouldBeNil)
			convey.So(viper.GetString(key.DownloadPrefix), convey.ShouldEqual, "tiktok")

			convey.So(Reset("nope"), convey.ShouldNotBeNil)
		})

		convey.Convey("Fields marshal with their env name and current value", func() {
			viper.Set(key.DownloadPrefix, "clip")
			f := Default[key.DownloadPrefix]
			data, err := json.Marshal(&f)
			convey.So(err, convey.ShouldBeNil)

			var decoded map[string]any
			convey.So(json.Unmarshal(data, &decoded), convey.ShouldBeNil)
			convey.So(decoded["env"], convey.ShouldEqual, "CLIPDROP_DOWNLOAD_PREFIX")
			convey.So(decoded["value"], convey.ShouldEqual, "clip")
			convey.So(decoded["default"], convey.ShouldEqual, "tiktok")
			convey.So(decoded["type"], convey.ShouldEqual, "string")
			convey.So(Reset(key.DownloadPrefix), convey.ShouldBeNil)
		})

		convey.Convey("Save creates the config file", func() {
			convey.So(Save(), convey.ShouldBeNil)
			exists, err := filesystem.API().Exists(File())
			convey.So(err, convey.ShouldBeNil)
			convey.So(exists, convey.ShouldBeTrue)
			convey.So(Delete(), convey.ShouldBeNil)
		})
	})
}
