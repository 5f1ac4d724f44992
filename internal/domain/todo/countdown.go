package todo

import (
	"fmt"
	"time"
)

// FormatRemaining renders a countdown as HH:MM:SS. Negative durations are
// clamped to zero; hours are not wrapped at 24.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
