// Package config registers every setting with its default and wires viper to the config file and environment.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// NoWait is a pause explicitly turned off. A zero pause means "use the default".
const NoWait time.Duration = -1

// Millis reads an integer millisecond setting and converts it to a time.Duration.
// Negative values are clamped to zero.
func Millis(k string) time.Duration {
	ms := viper.GetInt(k)
	if ms < 0 {
		ms = 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Pause reads a millisecond pacing setting. A setting of 0 becomes NoWait.
func Pause(k string) time.Duration {
	if d := Millis(k); d > 0 {
		return d
	}
	return NoWait
}
