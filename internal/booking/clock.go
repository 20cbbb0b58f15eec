package booking

import (
	"fmt"
	"time"
)

// DateLayout is the only timestamp format accepted at the API boundary.
// No timezone suffix and no fractional seconds are allowed.
const DateLayout = "2006-01-02 15:04:05"

// operatingOffset shifts wall-clock UTC into the service's operating
// timezone. Every "is this slot in the future" comparison uses the
// shifted instant as its reference point.
const operatingOffset = 2 * time.Hour

// windowBackDays and windowSpanDays define the calendar paging window:
// the window starts at the Monday of the anchor's week minus eight days
// and spans twenty-two days. Existing calendar clients page with these
// exact constants, so they must not change.
const (
	windowBackDays = 8
	windowSpanDays = 22
)

// Now returns the current instant in the operating timezone, truncated
// to whole seconds.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second).Add(operatingOffset)
}

// ParseDate parses a timestamp in DateLayout. Any deviation from the
// format yields an error wrapping ErrMalformedDate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// WeekWindow computes the [start, end) range used to list a schedule's
// neighborhood around the anchor date. The weekday is Monday-based, so
// the window always opens windowBackDays before the Monday of the
// anchor's week.
func WeekWindow(anchor time.Time) (start, end time.Time) {
	weekday := (int(anchor.Weekday()) + 6) % 7 // Monday = 0
	start = anchor.AddDate(0, 0, -weekday-windowBackDays)
	end = start.AddDate(0, 0, windowSpanDays)
	return start, end
}
