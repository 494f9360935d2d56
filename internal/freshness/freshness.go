// Package freshness formats how long ago the feed's data was last updated.
package freshness

import (
	"fmt"
	"time"
)

// Format renders d in whole seconds: "42s", "3m 7s" or "2h 0m 15s".
// Negative durations, which show up when the feed clock runs ahead of ours,
// render as "0s".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	switch {
	case total < 60:
		return fmt.Sprintf("%ds", total)
	case total < 3600:
		return fmt.Sprintf("%dm %ds", total/60, total%60)
	default:
		return fmt.Sprintf("%dh %dm %ds", total/3600, (total%3600)/60, total%60)
	}
}

// Since formats the time elapsed from anchor to now. A zero anchor means no
// data has been stamped yet and yields "0s".
func Since(anchor, now time.Time) string {
	if anchor.IsZero() {
		return "0s"
	}
	return Format(now.Sub(anchor))
}
