package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
	"kostdesk/internal/pkg/metrics"
)

// ReminderService runs the daily sweep that reports expiring contracts and
// overdue invoices. It only reads: derived statuses are never written back.
type ReminderService struct {
	contracts *ContractService
	invoices  *InvoiceService
	notifier  *NotificationService
	schedule  string
	location  *time.Location
	clock     Clock
	logger    *slog.Logger
	cron      *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(
	contracts *ContractService,
	invoices *InvoiceService,
	notifier *NotificationService,
	schedule string,
	location *time.Location,
	clock Clock,
	logger *slog.Logger,
) *ReminderService {
	if location == nil {
		location = time.UTC
	}
	return &ReminderService{
		contracts: contracts,
		invoices:  invoices,
		notifier:  notifier,
		schedule:  schedule,
		location:  location,
		clock:     orClock(clock),
		logger:    orDefault(logger),
	}
}

// ReminderReport summarizes one sweep
type ReminderReport struct {
	RanAt             time.Time             `json:"ran_at"`
	ContractCounts    map[string]int        `json:"contract_counts"`
	InvoiceCounts     map[string]int        `json:"invoice_counts"`
	ExpiringContracts []domain.ContractView `json:"expiring_contracts"`
	OverdueInvoices   []domain.InvoiceView  `json:"overdue_invoices"`
	Warnings          int                   `json:"warnings"`
}

// Start registers the sweep on the cron schedule in the configured timezone
func (s *ReminderService) Start() error {
	c := cron.New(cron.WithLocation(s.location))
	if _, err := c.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			s.logger.Error("reminder sweep failed", slog.String("error", err.Error()))
		}
	}); err != nil {
		return fmt.Errorf("invalid REMINDER_CRON '%s': %w", s.schedule, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("reminder scheduler started",
		slog.String("schedule", s.schedule),
		slog.String("timezone", s.location.String()),
	)
	return nil
}

// Stop waits for a running sweep and stops the scheduler
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("reminder scheduler stopped")
}

// RunOnce derives every contract and invoice at the clock's now, refreshes the
// status gauges and notifies. A failed notification does not stop the other.
func (s *ReminderService) RunOnce(ctx context.Context) (*ReminderReport, error) {
	at := s.clock()

	contracts, err := s.contracts.Derived(ctx, at)
	if err != nil {
		metrics.ObserveReminderRun("error")
		return nil, err
	}
	invoices, err := s.invoices.Derived(ctx, at)
	if err != nil {
		metrics.ObserveReminderRun("error")
		return nil, err
	}

	report := &ReminderReport{
		RanAt:             at,
		ContractCounts:    summarizeContracts(contracts).Counts,
		InvoiceCounts:     summarizeInvoices(invoices).Counts,
		ExpiringContracts: []domain.ContractView{},
		OverdueInvoices:   []domain.InvoiceView{},
		Warnings:          contracts.WarningCount() + invoices.WarningCount(),
	}
	for _, c := range contracts.Items {
		if c.Status == domain.ContractExpiring {
			report.ExpiringContracts = append(report.ExpiringContracts, c)
		}
	}
	for _, inv := range invoices.Items {
		if inv.DerivedStatus == domain.InvoiceOverdue {
			report.OverdueInvoices = append(report.OverdueInvoices, inv)
		}
	}
	metrics.SetContractCounts(report.ContractCounts)
	metrics.SetInvoiceCounts(report.InvoiceCounts)

	notifyErr := errors.Join(
		s.notifier.NotifyExpiringContracts(ctx, report.ExpiringContracts),
		s.notifier.NotifyOverdueInvoices(ctx, report.OverdueInvoices),
	)

	s.logger.Info("reminder sweep finished",
		slog.String("date", lifecycle.DateOnly(at, s.location).Format("2006-01-02")),
		slog.Int("expiring_contracts", len(report.ExpiringContracts)),
		slog.Int("overdue_invoices", len(report.OverdueInvoices)),
		slog.Int("warnings", report.Warnings),
	)
	if notifyErr != nil {
		metrics.ObserveReminderRun("notify_error")
		return report, notifyErr
	}
	metrics.ObserveReminderRun("success")
	return report, nil
}
