package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
)

// InvoiceService handles billing. Overdue is derived from the due date on
// every read; only Pending, Paid and Cancelled are ever written.
type InvoiceService struct {
	repo         repositories.InvoiceRepository
	contractRepo repositories.ContractRepository
	policy       lifecycle.Policy
	clock        Clock
	logger       *slog.Logger
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	repo repositories.InvoiceRepository,
	contractRepo repositories.ContractRepository,
	policy lifecycle.Policy,
	clock Clock,
	logger *slog.Logger,
) *InvoiceService {
	return &InvoiceService{
		repo:         repo,
		contractRepo: contractRepo,
		policy:       policy,
		clock:        orClock(clock),
		logger:       orDefault(logger),
	}
}

// CreateInvoiceInput represents create invoice input
type CreateInvoiceInput struct {
	ContractID  uint         `json:"contract_id"`
	Description string       `json:"description"`
	Amount      domain.Money `json:"amount"`
	IssueDate   time.Time    `json:"issue_date"`
	DueDate     time.Time    `json:"due_date"`
}

// InvoiceSummary is the billing overview at one day
type InvoiceSummary struct {
	Counts      map[string]int `json:"counts"`
	Total       int            `json:"total"`
	Outstanding domain.Money   `json:"outstanding"`
	Overdue     domain.Money   `json:"overdue"`
	Collected   domain.Money   `json:"collected"`
	Warnings    int            `json:"warnings"`
}

// Derived loads every invoice and derives it at now
func (s *InvoiceService) Derived(ctx context.Context, at time.Time) (lifecycle.Batch[domain.InvoiceView], error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return lifecycle.Batch[domain.InvoiceView]{}, err
	}
	invoices := make([]domain.Invoice, len(rows))
	for i, r := range rows {
		invoices[i] = r.ToDomain()
	}
	batch := s.policy.DeriveInvoices(invoices, at)
	reportWarnings(s.logger, batch.Warnings)
	return batch, nil
}

// List returns one page of derived invoices matching q
func (s *InvoiceService) List(ctx context.Context, q ListQuery) (*ListResult[domain.InvoiceView], error) {
	batch, err := s.Derived(ctx, now(q.Today, s.clock))
	if err != nil {
		return nil, err
	}
	return page(q, batch.Items, lifecycle.InvoiceRecord, batch.WarningCount()), nil
}

// Create issues a new Pending invoice against a contract
func (s *InvoiceService) Create(ctx context.Context, input *CreateInvoiceInput) (*domain.InvoiceView, error) {
	contract, err := s.contractRepo.GetByID(ctx, input.ContractID)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}

	issue := input.IssueDate
	if issue.IsZero() {
		issue = lifecycle.DateOnly(s.clock(), s.policy.Location)
	}
	if !input.DueDate.IsZero() && lifecycle.DateOnly(input.DueDate, s.policy.Location).Before(lifecycle.DateOnly(issue, s.policy.Location)) {
		return nil, domain.NewValidationError("invoice", 0, "due_date", "is before issue_date")
	}
	amount := input.Amount
	if amount == 0 {
		amount = domain.Money(contract.MonthlyRent)
	}

	inv := domain.Invoice{
		Number:      newInvoiceNumber(issue),
		ContractID:  contract.ID,
		TenantName:  contract.TenantName,
		Description: strings.TrimSpace(input.Description),
		Amount:      amount,
		IssueDate:   issue,
		DueDate:     input.DueDate,
		Status:      domain.InvoicePending,
	}
	at := s.clock()
	if _, err := s.policy.DeriveInvoice(inv, at); err != nil {
		return nil, err
	}

	row := models.InvoiceFromDomain(inv)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	inv.ID = row.ID

	view, err := s.policy.DeriveInvoice(inv, at)
	if err != nil {
		return nil, err
	}
	s.logger.Info("invoice issued", slog.String("number", inv.Number), slog.Uint64("contract_id", uint64(inv.ContractID)))
	return &view, nil
}

// Pay marks an open invoice as paid
func (s *InvoiceService) Pay(ctx context.Context, id uint) (*domain.InvoiceView, error) {
	return s.transition(ctx, id, "pay", func(inv domain.Invoice, at time.Time) (domain.Invoice, error) {
		return lifecycle.PayInvoice(inv, at)
	})
}

// Cancel cancels an open invoice
func (s *InvoiceService) Cancel(ctx context.Context, id uint) (*domain.InvoiceView, error) {
	return s.transition(ctx, id, "cancel", func(inv domain.Invoice, _ time.Time) (domain.Invoice, error) {
		return lifecycle.CancelInvoice(inv)
	})
}

func (s *InvoiceService) transition(ctx context.Context, id uint, action string, apply func(domain.Invoice, time.Time) (domain.Invoice, error)) (*domain.InvoiceView, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrInvoiceNotFound)
	}

	at := s.clock()
	next, err := apply(row.ToDomain(), at)
	if err != nil {
		return nil, err
	}

	from := row.Status
	row.Status = string(next.Status)
	row.PaidAt = next.PaidAt
	if err := s.repo.UpdateStatus(ctx, row, from); err != nil {
		if !errors.Is(err, repositories.ErrStaleStatus) {
			return nil, err
		}
		current := "a changed status"
		if fresh, gerr := s.repo.GetByID(ctx, id); gerr == nil {
			current = fresh.Status
		}
		return nil, &domain.TransitionError{Entity: "invoice", From: current, Action: action}
	}

	view, err := s.policy.DeriveInvoice(next, at)
	if err != nil {
		return nil, err
	}
	s.logger.Info("invoice updated", slog.String("number", next.Number), slog.String("status", string(next.Status)))
	return &view, nil
}

// Summary counts invoices per derived status and totals the amounts
func (s *InvoiceService) Summary(ctx context.Context, today *time.Time) (*InvoiceSummary, error) {
	batch, err := s.Derived(ctx, now(today, s.clock))
	if err != nil {
		return nil, err
	}
	return summarizeInvoices(batch), nil
}

func summarizeInvoices(batch lifecycle.Batch[domain.InvoiceView]) *InvoiceSummary {
	amount := func(v domain.InvoiceView) domain.Money { return v.Amount }
	is := func(statuses ...domain.InvoiceStatus) func(domain.InvoiceView) bool {
		return func(v domain.InvoiceView) bool {
			for _, st := range statuses {
				if v.DerivedStatus == st {
					return true
				}
			}
			return false
		}
	}

	return &InvoiceSummary{
		Counts:      lifecycle.SummaryCounts(batch.Items, domain.InvoiceStatuses, func(v domain.InvoiceView) domain.InvoiceStatus { return v.DerivedStatus }),
		Total:       len(batch.Items),
		Outstanding: lifecycle.TotalAmount(batch.Items, amount, is(domain.InvoicePending, domain.InvoiceOverdue)),
		Overdue:     lifecycle.TotalAmount(batch.Items, amount, is(domain.InvoiceOverdue)),
		Collected:   lifecycle.TotalAmount(batch.Items, amount, is(domain.InvoicePaid)),
		Warnings:    batch.WarningCount(),
	}
}

// newInvoiceNumber formats INV-<yyyymm>-<8 hex chars>
func newInvoiceNumber(issue time.Time) string {
	return fmt.Sprintf("INV-%s-%s", issue.Format("200601"), strings.ToUpper(uuid.NewString()[:8]))
}
