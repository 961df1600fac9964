package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
)

// CalendarService projects contracts, tickets and todos onto one calendar
type CalendarService struct {
	contractRepo    repositories.ContractRepository
	maintenanceRepo repositories.MaintenanceRepository
	todoRepo        repositories.TodoRepository
	policy          lifecycle.Policy
	clock           Clock
	logger          *slog.Logger
}

// NewCalendarService creates a new calendar service
func NewCalendarService(
	contractRepo repositories.ContractRepository,
	maintenanceRepo repositories.MaintenanceRepository,
	todoRepo repositories.TodoRepository,
	policy lifecycle.Policy,
	clock Clock,
	logger *slog.Logger,
) *CalendarService {
	return &CalendarService{
		contractRepo:    contractRepo,
		maintenanceRepo: maintenanceRepo,
		todoRepo:        todoRepo,
		policy:          policy,
		clock:           orClock(clock),
		logger:          orDefault(logger),
	}
}

// CalendarQuery bounds the calendar; zero bounds are open
type CalendarQuery struct {
	From  time.Time
	To    time.Time
	Today *time.Time
	Type  string
}

// CalendarDay is every event starting on one day
type CalendarDay struct {
	Date   string                 `json:"date"`
	Events []domain.CalendarEvent `json:"events"`
}

// CalendarView is the grouped calendar in chronological day order
type CalendarView struct {
	Days           []CalendarDay `json:"days"`
	Total          int           `json:"total"`
	Warnings       int           `json:"warnings"`
	WarningMessage string        `json:"warning_message,omitempty"`
}

// Events loads every source and projects it at now
func (s *CalendarService) Events(ctx context.Context, at time.Time) (lifecycle.Batch[domain.CalendarEvent], error) {
	var empty lifecycle.Batch[domain.CalendarEvent]

	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return empty, err
	}
	ticketRows, err := s.maintenanceRepo.List(ctx)
	if err != nil {
		return empty, err
	}
	todoRows, err := s.todoRepo.List(ctx)
	if err != nil {
		return empty, err
	}

	tickets := make([]domain.MaintenanceTicket, len(ticketRows))
	for i, r := range ticketRows {
		tickets[i] = r.ToDomain()
	}
	todos := make([]domain.TodoTask, len(todoRows))
	for i, r := range todoRows {
		todos[i] = r.ToDomain()
	}

	batch := s.policy.CalendarEvents(contractsToDomain(contracts), tickets, todos, at)
	reportWarnings(s.logger, batch.Warnings)
	return batch, nil
}

// Calendar returns the events within the query range grouped by day
func (s *CalendarService) Calendar(ctx context.Context, q CalendarQuery) (*CalendarView, error) {
	batch, err := s.Events(ctx, now(q.Today, s.clock))
	if err != nil {
		return nil, err
	}

	events := s.policy.InRange(batch.Items, q.From, q.To)
	if q.Type != "" && q.Type != lifecycle.FilterAll {
		kept := events[:0]
		for _, e := range events {
			if string(e.Type) == q.Type {
				kept = append(kept, e)
			}
		}
		events = kept
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].StartDate.Before(events[j].StartDate) })

	groups, groupWarnings := s.policy.GroupEventsByDay(events)
	reportWarnings(s.logger, groupWarnings)

	warnings := batch.WarningCount() + len(groupWarnings)
	view := &CalendarView{
		Days:           make([]CalendarDay, 0, len(groups)),
		Total:          groups.Len(),
		Warnings:       warnings,
		WarningMessage: lifecycle.WarningMessage(warnings),
	}
	for _, day := range groups.Days() {
		view.Days = append(view.Days, CalendarDay{Date: day, Events: groups[day]})
	}
	return view, nil
}

// Upcoming returns the events starting within days of now, soonest first
func (s *CalendarService) Upcoming(ctx context.Context, days int, today *time.Time) ([]domain.CalendarEvent, int, error) {
	at := now(today, s.clock)
	batch, err := s.Events(ctx, at)
	if err != nil {
		return nil, 0, err
	}
	events := s.policy.Upcoming(batch.Items, days, at)
	sort.SliceStable(events, func(i, j int) bool { return events[i].StartDate.Before(events[j].StartDate) })
	return events, batch.WarningCount(), nil
}
