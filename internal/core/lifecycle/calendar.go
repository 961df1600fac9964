package lifecycle

import (
	"fmt"
	"time"

	"kostdesk/internal/core/domain"
)

// at places the calendar day of t at the given hour in the policy location.
func (p Policy) at(t time.Time, hour int) time.Time {
	loc := p.location()
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

// ContractEvents projects a contract into its check-in and check-out events.
func (p Policy) ContractEvents(c domain.Contract, now time.Time) ([]domain.CalendarEvent, error) {
	v, err := p.DeriveContract(c, now)
	if err != nil {
		return nil, err
	}
	location := c.RoomNumber
	if location != "" {
		location = "Room " + location
	}
	checkIn := p.at(c.StartDate, p.CheckInHour)
	checkOut := p.at(c.EndDate, p.CheckOutHour)
	return []domain.CalendarEvent{
		{
			ID:        fmt.Sprintf("contract-%d-in", c.ID),
			SourceID:  c.ID,
			Title:     "Check-in: " + c.TenantName,
			StartDate: checkIn,
			EndDate:   checkIn,
			Type:      domain.EventCheckIn,
			Status:    string(v.Status),
			Location:  location,
		},
		{
			ID:        fmt.Sprintf("contract-%d-out", c.ID),
			SourceID:  c.ID,
			Title:     "Check-out: " + c.TenantName,
			StartDate: checkOut,
			EndDate:   checkOut,
			Type:      domain.EventCheckOut,
			Status:    string(v.Status),
			Location:  location,
		},
	}, nil
}

// TicketEvent projects a maintenance ticket onto its scheduled time, or the
// time it was reported when nothing is scheduled yet.
func (p Policy) TicketEvent(t domain.MaintenanceTicket) (domain.CalendarEvent, error) {
	start := t.ReportedAt
	if t.ScheduledAt != nil && !t.ScheduledAt.IsZero() {
		start = *t.ScheduledAt
	}
	if err := requireDate("maintenance ticket", t.ID, "reported_at", start); err != nil {
		return domain.CalendarEvent{}, err
	}
	status := string(t.Status)
	if !t.Status.IsValid() {
		status = domain.StatusUnknown
	}
	end := start
	if t.CompletedAt != nil && t.CompletedAt.After(start) {
		end = *t.CompletedAt
	}
	return domain.CalendarEvent{
		ID:         fmt.Sprintf("ticket-%d", t.ID),
		SourceID:   t.ID,
		Title:      t.Title,
		StartDate:  start,
		EndDate:    end,
		Type:       domain.EventMaintenance,
		Status:     status,
		Location:   t.Location,
		AssignedTo: t.AssignedTo,
	}, nil
}

func (p Policy) TodoEvent(t domain.TodoTask) (domain.CalendarEvent, error) {
	if err := requireDate("todo", t.ID, "due_date", t.DueDate); err != nil {
		return domain.CalendarEvent{}, err
	}
	status := string(t.Status)
	if !t.Status.IsValid() {
		status = domain.StatusUnknown
	}
	return domain.CalendarEvent{
		ID:         fmt.Sprintf("todo-%d", t.ID),
		SourceID:   t.ID,
		Title:      t.Title,
		StartDate:  t.DueDate,
		EndDate:    t.DueDate,
		Type:       domain.EventTodo,
		Status:     status,
		AssignedTo: t.AssignedTo,
	}, nil
}

// CalendarEvents concatenates the projections of contracts, tickets and todos,
// in that order. Records that cannot be projected are reported as warnings.
func (p Policy) CalendarEvents(contracts []domain.Contract, tickets []domain.MaintenanceTicket, todos []domain.TodoTask, now time.Time) Batch[domain.CalendarEvent] {
	var out Batch[domain.CalendarEvent]
	for _, c := range contracts {
		evs, err := p.ContractEvents(c, now)
		if err != nil {
			out.Warnings = append(out.Warnings, err)
			continue
		}
		out.Items = append(out.Items, evs...)
	}
	tb := Apply(tickets, p.TicketEvent)
	td := Apply(todos, p.TodoEvent)
	out.Items = append(out.Items, tb.Items...)
	out.Items = append(out.Items, td.Items...)
	out.Warnings = append(out.Warnings, tb.Warnings...)
	out.Warnings = append(out.Warnings, td.Warnings...)
	return out
}

// InRange keeps the events whose start day lies within [from, to], inclusive.
// A zero bound is open.
func (p Policy) InRange(events []domain.CalendarEvent, from, to time.Time) []domain.CalendarEvent {
	out := make([]domain.CalendarEvent, 0, len(events))
	for _, e := range events {
		if !from.IsZero() && p.DaysBetween(e.StartDate, from) < 0 {
			continue
		}
		if !to.IsZero() && p.DaysBetween(e.StartDate, to) > 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Upcoming keeps the events starting between today and n days ahead.
func (p Policy) Upcoming(events []domain.CalendarEvent, n int, now time.Time) []domain.CalendarEvent {
	out := make([]domain.CalendarEvent, 0)
	for _, e := range events {
		if p.IsWithinDays(e.StartDate, n, now) {
			out = append(out, e)
		}
	}
	return out
}
