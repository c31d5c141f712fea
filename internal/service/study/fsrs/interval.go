package fsrs

import (
	"fmt"
	"math"
)

// FormatInterval renders a scheduled interval for display: whole minutes for
// sub-hour, whole hours for sub-day, whole days otherwise. Rounding happens
// only here; the persisted ScheduledDays keeps the raw value, so previews
// stay stable while stored intervals never accumulate rounding error.
func FormatInterval(scheduledDays float64) string {
	if scheduledDays < 0 || math.IsNaN(scheduledDays) {
		scheduledDays = 0
	}

	minutes := scheduledDays * 24 * 60
	switch {
	case minutes < 60:
		m := int(math.Round(minutes))
		if m < 1 {
			m = 1
		}
		return fmt.Sprintf("%dm", m)
	case scheduledDays < 1:
		return fmt.Sprintf("%dh", int(math.Round(scheduledDays*24)))
	default:
		return fmt.Sprintf("%dd", int(math.Round(scheduledDays)))
	}
}
