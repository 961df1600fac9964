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

// CashFlowService keeps the income and expense ledger
type CashFlowService struct {
	repo   repositories.CashFlowRepository
	policy lifecycle.Policy
	clock  Clock
	logger *slog.Logger
}

// NewCashFlowService creates a new cash flow service
func NewCashFlowService(repo repositories.CashFlowRepository, policy lifecycle.Policy, clock Clock, logger *slog.Logger) *CashFlowService {
	return &CashFlowService{repo: repo, policy: policy, clock: orClock(clock), logger: orDefault(logger)}
}

// CreateCashFlowInput represents create ledger entry input
type CreateCashFlowInput struct {
	Kind        domain.CashFlowKind   `json:"kind"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	Amount      domain.Money          `json:"amount"`
	Date        time.Time             `json:"date"`
	Status      domain.CashFlowStatus `json:"status"`
}

// CashFlowSummary totals completed entries; pending ones are reported apart
type CashFlowSummary struct {
	Income         domain.Money   `json:"income"`
	Expense        domain.Money   `json:"expense"`
	Net            domain.Money   `json:"net"`
	PendingIncome  domain.Money   `json:"pending_income"`
	PendingExpense domain.Money   `json:"pending_expense"`
	Counts         map[string]int `json:"counts"`
}

func (s *CashFlowService) all(ctx context.Context) ([]domain.CashFlowEntry, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CashFlowEntry, len(rows))
	for i, r := range rows {
		out[i] = r.ToDomain()
	}
	return out, nil
}

// List returns one page of ledger entries matching q
func (s *CashFlowService) List(ctx context.Context, q ListQuery) (*ListResult[domain.CashFlowEntry], error) {
	entries, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	return page(q, entries, lifecycle.CashFlowRecord, 0), nil
}

// Create records a ledger entry
func (s *CashFlowService) Create(ctx context.Context, input *CreateCashFlowInput) (*domain.CashFlowEntry, error) {
	if !input.Kind.IsValid() {
		return nil, domain.NewValidationError("cash flow entry", 0, "kind", "must be income or expense")
	}
	if input.Amount <= 0 {
		return nil, domain.NewValidationError("cash flow entry", 0, "amount", "must be positive")
	}
	status := input.Status
	if status == "" {
		status = domain.CashFlowCompleted
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("cash flow entry", 0, "status", "must be Completed or Pending")
	}
	date := input.Date
	if date.IsZero() {
		date = lifecycle.DateOnly(s.clock(), s.policy.Location)
	}

	e := domain.CashFlowEntry{
		Kind:        input.Kind,
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		Amount:      input.Amount,
		Date:        date,
		Status:      status,
	}
	row := models.CashFlowEntryFromDomain(e)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	e.ID = row.ID
	return &e, nil
}

// Summary totals the ledger, optionally restricted to [from, to]
func (s *CashFlowService) Summary(ctx context.Context, from, to time.Time) (*CashFlowSummary, error) {
	entries, err := s.all(ctx)
	if err != nil {
		return nil, err
	}
	inRange := make([]domain.CashFlowEntry, 0, len(entries))
	for _, e := range entries {
		if !from.IsZero() && s.policy.DaysBetween(e.Date, from) < 0 {
			continue
		}
		if !to.IsZero() && s.policy.DaysBetween(e.Date, to) > 0 {
			continue
		}
		inRange = append(inRange, e)
	}
	return summarizeCashFlow(inRange), nil
}

func summarizeCashFlow(entries []domain.CashFlowEntry) *CashFlowSummary {
	amount := func(e domain.CashFlowEntry) domain.Money { return e.Amount }
	where := func(kind domain.CashFlowKind, status domain.CashFlowStatus) func(domain.CashFlowEntry) bool {
		return func(e domain.CashFlowEntry) bool { return e.Kind == kind && e.Status == status }
	}

	sum := &CashFlowSummary{
		Income:         lifecycle.TotalAmount(entries, amount, where(domain.CashFlowIncome, domain.CashFlowCompleted)),
		Expense:        lifecycle.TotalAmount(entries, amount, where(domain.CashFlowExpense, domain.CashFlowCompleted)),
		PendingIncome:  lifecycle.TotalAmount(entries, amount, where(domain.CashFlowIncome, domain.CashFlowPending)),
		PendingExpense: lifecycle.TotalAmount(entries, amount, where(domain.CashFlowExpense, domain.CashFlowPending)),
		Counts:         lifecycle.SummaryCounts(entries, domain.CashFlowStatuses, func(e domain.CashFlowEntry) domain.CashFlowStatus { return e.Status }),
	}
	sum.Net = sum.Income - sum.Expense
	return sum
}
