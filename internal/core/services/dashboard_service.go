package services

import (
	"context"
	"sort"
	"time"

	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
)

// DashboardService assembles the overview page from the other services
type DashboardService struct {
	contracts   *ContractService
	invoices    *InvoiceService
	maintenance *MaintenanceService
	cashFlow    *CashFlowService
	calendar    *CalendarService
	userRepo    repositories.UserRepository
	// upcomingDays is the window of the upcoming events list
	upcomingDays int
	clock        Clock
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	contracts *ContractService,
	invoices *InvoiceService,
	maintenance *MaintenanceService,
	cashFlow *CashFlowService,
	calendar *CalendarService,
	userRepo repositories.UserRepository,
	upcomingDays int,
	clock Clock,
) *DashboardService {
	return &DashboardService{
		contracts:    contracts,
		invoices:     invoices,
		maintenance:  maintenance,
		cashFlow:     cashFlow,
		calendar:     calendar,
		userRepo:     userRepo,
		upcomingDays: upcomingDays,
		clock:        orClock(clock),
	}
}

// ============================================================
// Overview
// ============================================================

// DashboardData represents the overview page
type DashboardData struct {
	Date string `json:"date"`

	// Staff
	TotalAdmins   int64 `json:"total_admins"`
	TotalManagers int64 `json:"total_managers"`
	TotalStaff    int64 `json:"total_staff"`

	Contracts   *ContractSummary `json:"contracts"`
	Invoices    *InvoiceSummary  `json:"invoices"`
	Maintenance *TicketSummary   `json:"maintenance"`
	CashFlow    *CashFlowSummary `json:"cash_flow"`

	Upcoming []domain.CalendarEvent `json:"upcoming"`

	Warnings       int    `json:"warnings"`
	WarningMessage string `json:"warning_message,omitempty"`
}

// Overview returns the dashboard at today, or at the clock when today is nil
func (s *DashboardService) Overview(ctx context.Context, today *time.Time) (*DashboardData, error) {
	at := now(today, s.clock)
	data := &DashboardData{Date: s.contracts.policy.DayKey(at)}

	var err error
	if data.TotalAdmins, err = s.userRepo.CountByRole(ctx, string(domain.RoleAdmin)); err != nil {
		return nil, err
	}
	if data.TotalManagers, err = s.userRepo.CountByRole(ctx, string(domain.RoleManager)); err != nil {
		return nil, err
	}
	if data.TotalStaff, err = s.userRepo.CountByRole(ctx, string(domain.RoleStaff)); err != nil {
		return nil, err
	}

	contracts, err := s.contracts.Derived(ctx, at)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.Derived(ctx, at)
	if err != nil {
		return nil, err
	}
	events, err := s.calendar.Events(ctx, at)
	if err != nil {
		return nil, err
	}
	data.Contracts = summarizeContracts(contracts)
	data.Invoices = summarizeInvoices(invoices)

	if data.Maintenance, err = s.maintenance.Summary(ctx); err != nil {
		return nil, err
	}
	if data.CashFlow, err = s.cashFlow.Summary(ctx, time.Time{}, time.Time{}); err != nil {
		return nil, err
	}

	upcoming := s.calendar.policy.Upcoming(events.Items, s.upcomingDays, at)
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].StartDate.Before(upcoming[j].StartDate) })
	data.Upcoming = upcoming

	// A broken contract shows up in both the contract and the calendar batch.
	data.Warnings = distinctWarnings(contracts.Warnings, invoices.Warnings, events.Warnings)
	data.WarningMessage = lifecycle.WarningMessage(data.Warnings)
	return data, nil
}

func distinctWarnings(groups ...[]error) int {
	seen := make(map[string]struct{})
	for _, g := range groups {
		for _, err := range g {
			seen[err.Error()] = struct{}{}
		}
	}
	return len(seen)
}
