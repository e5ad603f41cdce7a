// Package times provides utility functions related to times and timers.
package times

import (
	"fmt"
	"time"
)

// HumanDuration formats d in microseconds below one millisecond, milliseconds
// below one second, and seconds otherwise.
func HumanDuration(d time.Duration) string {
	if us := d.Microseconds(); us < 1000 {
		return fmt.Sprintf("%d µs", us)
	}
	if ms := d.Milliseconds(); ms < 1000 {
		return fmt.Sprintf("%d ms", ms)
	}
	return fmt.Sprintf("%.2f s", d.Seconds())
}
