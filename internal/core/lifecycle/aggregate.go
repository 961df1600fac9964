package lifecycle

import (
	"sort"
	"time"

	"kostdesk/internal/core/domain"
)

// DayGroups maps an ISO calendar day to the records falling on it, in input order.
type DayGroups[T any] map[string][]T

// Days returns the group keys in chronological order.
func (g DayGroups[T]) Days() []string {
	days := make([]string, 0, len(g))
	for d := range g {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

// Len returns the number of records across all groups.
func (g DayGroups[T]) Len() int {
	n := 0
	for _, items := range g {
		n += len(items)
	}
	return n
}

// GroupByDay partitions records by the calendar day of dateOf.
// Records whose date is zero are reported as warnings carrying idOf and left out.
func GroupByDay[T any](p Policy, records []T, idOf func(T) uint, dateOf func(T) time.Time) (DayGroups[T], []error) {
	groups := DayGroups[T]{}
	var warnings []error
	for _, r := range records {
		t := dateOf(r)
		if t.IsZero() {
			warnings = append(warnings, domain.NewValidationError("event", idOf(r), "start_date", "is required"))
			continue
		}
		key := p.DayKey(t)
		groups[key] = append(groups[key], r)
	}
	return groups, warnings
}

// GroupEventsByDay groups calendar events by their start day.
func (p Policy) GroupEventsByDay(events []domain.CalendarEvent) (DayGroups[domain.CalendarEvent], []error) {
	groups, warnings := GroupByDay(p, events,
		func(e domain.CalendarEvent) uint { return e.SourceID },
		func(e domain.CalendarEvent) time.Time { return e.StartDate })
	for i, w := range warnings {
		if v, ok := w.(*domain.ValidationError); ok {
			v.Entity = "calendar event"
			warnings[i] = v
		}
	}
	return groups, warnings
}

// Status is satisfied by every closed status enum.
type Status interface {
	~string
	IsValid() bool
}

// SummaryCounts counts records per status. Every status in known is present,
// zero or not; values outside known are counted under domain.StatusUnknown,
// so the counts always add up to len(records).
func SummaryCounts[T any, S Status](records []T, known []S, statusOf func(T) S) map[string]int {
	counts := make(map[string]int, len(known)+1)
	for _, s := range known {
		counts[string(s)] = 0
	}
	for _, r := range records {
		s := statusOf(r)
		if !s.IsValid() {
			counts[domain.StatusUnknown]++
			continue
		}
		counts[string(s)]++
	}
	return counts
}

// TotalAmount sums amountOf over the records accepted by keep, in exact
// minor units. A nil keep accepts every record.
func TotalAmount[T any](records []T, amountOf func(T) domain.Money, keep func(T) bool) domain.Money {
	var total domain.Money
	for _, r := range records {
		if keep != nil && !keep(r) {
			continue
		}
		total += amountOf(r)
	}
	return total
}
