// Package util holds small helpers shared across packages.
package util

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is done. It returns ctx.Err() when the wait was cut short.
// Non-positive durations return immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pacing resolves a configured pause: zero means fallback, a negative value means no pause.
func Pacing(d, fallback time.Duration) time.Duration {
	switch {
	case d < 0:
		return 0
	case d == 0:
		return fallback
	default:
		return d
	}
}
