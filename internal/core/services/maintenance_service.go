package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
)

// MaintenanceService handles repair tickets. Ticket status only moves by operator action.
type MaintenanceService struct {
	repo   repositories.MaintenanceRepository
	clock  Clock
	logger *slog.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(repo repositories.MaintenanceRepository, clock Clock, logger *slog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, clock: orClock(clock), logger: orDefault(logger)}
}

// CreateTicketInput represents create ticket input
type CreateTicketInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Priority    domain.Priority `json:"priority"`
	RoomID      uint            `json:"room_id"`
	Location    string          `json:"location"`
	AssignedTo  string          `json:"assigned_to"`
	ScheduledAt *time.Time      `json:"scheduled_at"`
	Cost        domain.Money    `json:"cost"`
}

// TicketSummary is the ticket breakdown per status
type TicketSummary struct {
	Counts        map[string]int `json:"counts"`
	Total         int            `json:"total"`
	Open          int            `json:"open"`
	CompletedCost domain.Money   `json:"completed_cost"`
}

func (s *MaintenanceService) all(ctx context.Context) ([]domain.MaintenanceTicket, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MaintenanceTicket, len(rows))
	for i, r := range rows {
		out[i] = r.ToDomain()
	}
	return out, nil
}

// List returns one page of tickets matching q
func (s *MaintenanceService) List(ctx context.Context, q ListQuery) (*ListResult[domain.MaintenanceTicket], error) {
	tickets, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return page(q, tickets, lifecycle.TicketRecord, unknownTickets(s.logger, tickets)), nil
}

// Create reports a new Pending ticket
func (s *MaintenanceService) Create(ctx context.Context, input *CreateTicketInput) (*domain.MaintenanceTicket, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.NewValidationError("maintenance ticket", 0, "title", "is required")
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.NewValidationError("maintenance ticket", 0, "priority", "must be one of low, medium, high, urgent")
	}
	if input.Cost < 0 {
		return nil, domain.NewValidationError("maintenance ticket", 0, "cost", "must not be negative")
	}

	t := domain.MaintenanceTicket{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Priority:    priority,
		RoomID:      input.RoomID,
		Location:    input.Location,
		AssignedTo:  input.AssignedTo,
		ReportedAt:  s.clock(),
		ScheduledAt: input.ScheduledAt,
		Status:      domain.TicketPending,
		Cost:        input.Cost,
	}
	row := models.MaintenanceTicketFromDomain(t)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	t.ID = row.ID
	s.logger.Info("maintenance ticket reported", slog.Uint64("ticket_id", uint64(t.ID)))
	return &t, nil
}

// UpdateStatus sets any ticket status chosen by the operator
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id uint, status domain.TicketStatus) (*domain.MaintenanceTicket, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTicketNotFound)
	}
	next, err := lifecycle.SetTicketStatus(row.ToDomain(), status, s.clock())
	if err != nil {
		return nil, err
	}
	row.Status = string(next.Status)
	row.CompletedAt = next.CompletedAt
	if err := s.repo.Update(ctx, row); err != nil {
		return nil, err
	}
	return &next, nil
}

// Summary counts tickets per status
func (s *MaintenanceService) Summary(ctx context.Context) (*TicketSummary, error) {
	tickets, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	unknownTickets(s.logger, tickets)
	return summarizeTickets(tickets), nil
}

func summarizeTickets(tickets []domain.MaintenanceTicket) *TicketSummary {
	counts := lifecycle.SummaryCounts(tickets, domain.TicketStatuses, func(t domain.MaintenanceTicket) domain.TicketStatus { return t.Status })
	completed := func(t domain.MaintenanceTicket) bool { return t.Status == domain.TicketCompleted }
	return &TicketSummary{
		Counts:        counts,
		Total:         len(tickets),
		Open:          counts[string(domain.TicketPending)] + counts[string(domain.TicketInProgress)],
		CompletedCost: lifecycle.TotalAmount(tickets, func(t domain.MaintenanceTicket) domain.Money { return t.Cost }, completed),
	}
}

// unknownTickets reports tickets whose stored status is outside the enum
func unknownTickets(logger *slog.Logger, tickets []domain.MaintenanceTicket) int {
	var warnings []error
	for _, t := range tickets {
		if !t.Status.IsValid() {
			warnings = append(warnings, &domain.UnknownStatusError{Entity: "maintenance ticket", RecordID: t.ID, Value: string(t.Status)})
		}
	}
	reportWarnings(logger, warnings)
	return len(warnings)
}
