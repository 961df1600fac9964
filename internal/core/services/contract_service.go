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

// ContractService lists, creates and summarizes rental contracts.
// Statuses are derived on every read and never stored.
type ContractService struct {
	repo     repositories.ContractRepository
	propRepo repositories.PropertyRepository
	policy   lifecycle.Policy
	clock    Clock
	logger   *slog.Logger
}

// NewContractService creates a new contract service
func NewContractService(
	repo repositories.ContractRepository,
	propRepo repositories.PropertyRepository,
	policy lifecycle.Policy,
	clock Clock,
	logger *slog.Logger,
) *ContractService {
	return &ContractService{
		repo:     repo,
		propRepo: propRepo,
		policy:   policy,
		clock:    orClock(clock),
		logger:   orDefault(logger),
	}
}

// CreateContractInput represents create contract input
type CreateContractInput struct {
	TenantName  string       `json:"tenant_name"`
	TenantPhone string       `json:"tenant_phone"`
	RoomID      uint         `json:"room_id"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	MonthlyRent domain.Money `json:"monthly_rent"`
	Deposit     domain.Money `json:"deposit"`
	Notes       string       `json:"notes"`
}

// ContractSummary is the status breakdown of all contracts at one day
type ContractSummary struct {
	Counts       map[string]int `json:"counts"`
	Total        int            `json:"total"`
	MonthlyRent  domain.Money   `json:"monthly_rent"`
	ExpiringSoon int            `json:"expiring_soon"`
	Warnings     int            `json:"warnings"`
}

// Derived loads every contract and derives it at now.
func (s *ContractService) Derived(ctx context.Context, at time.Time) (lifecycle.Batch[domain.ContractView], error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return lifecycle.Batch[domain.ContractView]{}, err
	}
	batch := s.policy.DeriveContracts(contractsToDomain(rows), at)
	reportWarnings(s.logger, batch.Warnings)
	return batch, nil
}

// List returns one page of derived contracts matching q
func (s *ContractService) List(ctx context.Context, q ListQuery) (*ListResult[domain.ContractView], error) {
	batch, err := s.Derived(ctx, now(q.Today, s.clock))
	if err != nil {
		return nil, err
	}
	return page(q, batch.Items, lifecycle.ContractRecord, batch.WarningCount()), nil
}

// Get returns one derived contract
func (s *ContractService) Get(ctx context.Context, id uint, today *time.Time) (*domain.ContractView, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	view, err := s.policy.DeriveContract(row.ToDomain(), now(today, s.clock))
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// Create validates and stores a contract. A zero rent takes the room's rent.
func (s *ContractService) Create(ctx context.Context, input *CreateContractInput) (*domain.ContractView, error) {
	if strings.TrimSpace(input.TenantName) == "" {
		return nil, domain.NewValidationError("contract", 0, "tenant_name", "is required")
	}
	room, err := s.propRepo.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}

	c := domain.Contract{
		TenantName:  strings.TrimSpace(input.TenantName),
		TenantPhone: input.TenantPhone,
		PropertyID:  room.PropertyID,
		RoomID:      room.ID,
		RoomNumber:  room.Number,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MonthlyRent: input.MonthlyRent,
		Deposit:     input.Deposit,
		Notes:       input.Notes,
	}
	if c.MonthlyRent == 0 {
		c.MonthlyRent = domain.Money(room.MonthlyRent)
	}
	if c.Deposit < 0 {
		return nil, domain.NewValidationError("contract", 0, "deposit", "must not be negative")
	}

	at := s.clock()
	if _, err := s.policy.DeriveContract(c, at); err != nil {
		return nil, err
	}

	row := models.ContractFromDomain(c)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	c.ID = row.ID

	view, err := s.policy.DeriveContract(c, at)
	if err != nil {
		return nil, err
	}
	s.logger.Info("contract created",
		slog.Uint64("contract_id", uint64(c.ID)),
		slog.Uint64("room_id", uint64(c.RoomID)),
	)
	return &view, nil
}

// Summary counts contracts per derived status
func (s *ContractService) Summary(ctx context.Context, today *time.Time) (*ContractSummary, error) {
	batch, err := s.Derived(ctx, now(today, s.clock))
	if err != nil {
		return nil, err
	}
	return summarizeContracts(batch), nil
}

func summarizeContracts(batch lifecycle.Batch[domain.ContractView]) *ContractSummary {
	statusOf := func(v domain.ContractView) domain.ContractStatus { return v.Status }
	running := func(v domain.ContractView) bool { return v.Status != domain.ContractExpired }

	counts := lifecycle.SummaryCounts(batch.Items, domain.ContractStatuses, statusOf)
	return &ContractSummary{
		Counts:       counts,
		Total:        len(batch.Items),
		MonthlyRent:  lifecycle.TotalAmount(batch.Items, func(v domain.ContractView) domain.Money { return v.MonthlyRent }, running),
		ExpiringSoon: counts[string(domain.ContractExpiring)],
		Warnings:     batch.WarningCount(),
	}
}

func contractsToDomain(rows []*models.Contract) []domain.Contract {
	out := make([]domain.Contract, len(rows))
	for i, r := range rows {
		out[i] = r.ToDomain()
	}
	return out
}
