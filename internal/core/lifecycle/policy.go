// Package lifecycle turns dated records into lifecycle statuses, day counts,
// calendar groupings and summary figures.
//
// Every function is pure: the current time is always a parameter, inputs are
// never modified, and each call returns freshly allocated results.
package lifecycle

import "time"

// DefaultExpiringThresholdDays is the number of remaining days below which a
// contract is reported as expiring.
const DefaultExpiringThresholdDays = 30

// Policy holds the tunable constants of the rules.
type Policy struct {
	ExpiringThresholdDays int
	// Location decides which calendar day a timestamp falls on.
	Location *time.Location
	// CheckInHour and CheckOutHour place contract events on the calendar.
	CheckInHour  int
	CheckOutHour int
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		ExpiringThresholdDays: DefaultExpiringThresholdDays,
		Location:              time.UTC,
		CheckInHour:           14,
		CheckOutHour:          12,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
