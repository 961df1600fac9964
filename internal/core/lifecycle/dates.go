package lifecycle

import (
	"fmt"
	"math"
	"strings"
	"time"

	"kostdesk/internal/core/domain"
)

const (
	isoDate      = "2006-01-02"
	millisPerDay = 24 * 60 * 60 * 1000
)

// DateOnly strips the time of day, keeping the calendar day t falls on in loc.
// The result is midnight UTC so that differences are whole days regardless of DST.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns ceil((a - b) / 1 day) over calendar dates: positive when a
// is in the future relative to b, negative when it is past, zero on the same day.
func (p Policy) DaysBetween(a, b time.Time) int {
	loc := p.location()
	delta := DateOnly(a, loc).Sub(DateOnly(b, loc)).Milliseconds()
	return int(math.Ceil(float64(delta) / millisPerDay))
}

// IsPast reports whether date is on a calendar day before now.
func (p Policy) IsPast(date, now time.Time) bool {
	return p.DaysBetween(date, now) < 0
}

// IsWithinDays reports whether date falls between today and n days ahead, inclusive.
func (p Policy) IsWithinDays(date time.Time, n int, now time.Time) bool {
	d := p.DaysBetween(date, now)
	return d >= 0 && d <= n
}

// DayKey is the ISO calendar-day key used for grouping.
func (p Policy) DayKey(t time.Time) string {
	return t.In(p.location()).Format(isoDate)
}

// RelativeTime describes date relative to now the way the dashboard labels it.
func (p Policy) RelativeTime(date, now time.Time) string {
	d := p.DaysBetween(date, now)
	switch {
	case d == 0:
		return "today"
	case d == 1:
		return "tomorrow"
	case d == -1:
		return "yesterday"
	case d > 1 && d < 30:
		return fmt.Sprintf("in %d days", d)
	case d < -1 && d > -30:
		return fmt.Sprintf("%d days ago", -d)
	case d >= 30:
		return plural("in %d month", d/30)
	default:
		return plural("%d month", -d/30) + " ago"
	}
}

func plural(format string, n int) string {
	s := fmt.Sprintf(format, n)
	if n != 1 {
		s += "s"
	}
	return s
}

// ParseDate parses an ISO date or RFC 3339 timestamp from a record field.
// Empty and malformed values produce a ValidationError naming the field.
func ParseDate(entity string, recordID uint, field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, domain.NewValidationError(entity, recordID, field, "is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(isoDate, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, domain.NewValidationError(entity, recordID, field, fmt.Sprintf("is not a valid date: %q", value))
}

// requireDate rejects the zero time, which is how a missing date reaches the core.
func requireDate(entity string, recordID uint, field string, t time.Time) error {
	if t.IsZero() {
		return domain.NewValidationError(entity, recordID, field, "is required")
	}
	return nil
}
