package availability

import (
	"fmt"
	"time"

	"carelink/models"
)

// IsAvailableNow reports whether the provider can consult immediately.
func IsAvailableNow(p models.Provider) bool {
	return p.Available
}

// TimeUntilAvailable computes how long until the provider's next slot. For a
// provider that is available now the wait is zero. A negative difference
// (clock skew or a stale feed) is clamped to zero rather than surfaced.
func TimeUntilAvailable(p models.Provider, now time.Time) time.Duration {
	if p.Available {
		return 0
	}
	d := p.NextAvailable.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// FormatWait renders a wait duration as "{h}h {m}m", or "{m}m" when under an
// hour. Both components are floor divisions; sub-minute precision is
// discarded, not rounded.
func FormatWait(d time.Duration) string {
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// OfferedSlots returns the provider's fixed daily slot list for the given
// date, in declared order. The list is not filtered by booking state; what
// is still free is the booking coordinator's concern, not this resolver's.
func OfferedSlots(p models.Provider, date string) []string {
	out := make([]string, len(p.OfferedTimes))
	copy(out, p.OfferedTimes)
	return out
}
