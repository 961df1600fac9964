package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
)

// WaitingListService runs the prospect pipeline:
// Pending -> Approved -> Converted, with Rejected reachable from either open state.
type WaitingListService struct {
	repo     repositories.WaitingListRepository
	propRepo repositories.PropertyRepository
	policy   lifecycle.Policy
	clock    Clock
	logger   *slog.Logger
}

// NewWaitingListService creates a new waiting list service
func NewWaitingListService(
	repo repositories.WaitingListRepository,
	propRepo repositories.PropertyRepository,
	policy lifecycle.Policy,
	clock Clock,
	logger *slog.Logger,
) *WaitingListService {
	return &WaitingListService{
		repo:     repo,
		propRepo: propRepo,
		policy:   policy,
		clock:    orClock(clock),
		logger:   orDefault(logger),
	}
}

// WaitingEntryView is an entry with its badge and the actions it still allows
type WaitingEntryView struct {
	domain.WaitingListEntry
	Variant domain.Variant            `json:"variant"`
	Actions []lifecycle.WaitingAction `json:"actions"`
}

// CreateWaitingInput represents create waiting list entry input
type CreateWaitingInput struct {
	Name                string       `json:"name"`
	Phone               string       `json:"phone"`
	Email               string       `json:"email"`
	PreferredPropertyID uint         `json:"preferred_property_id"`
	PreferredRoomType   string       `json:"preferred_room_type"`
	DesiredMoveIn       time.Time    `json:"desired_move_in"`
	Budget              domain.Money `json:"budget"`
	Notes               string       `json:"notes"`
}

// ConvertInput describes the contract created from an approved entry
type ConvertInput struct {
	RoomID      uint         `json:"room_id"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	MonthlyRent domain.Money `json:"monthly_rent"`
	Deposit     domain.Money `json:"deposit"`
}

// ConvertResult is the converted entry with the contract it produced
type ConvertResult struct {
	Entry    WaitingEntryView    `json:"entry"`
	Contract domain.ContractView `json:"contract"`
}

func viewEntry(e domain.WaitingListEntry) WaitingEntryView {
	actions := lifecycle.WaitingActions(e.Status)
	if actions == nil {
		actions = []lifecycle.WaitingAction{}
	}
	return WaitingEntryView{WaitingListEntry: e, Variant: e.Status.Variant(), Actions: actions}
}

// List returns one page of entries matching q
func (s *WaitingListService) List(ctx context.Context, q ListQuery) (*ListResult[WaitingEntryView], error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var warnings []error
	views := make([]WaitingEntryView, len(rows))
	for i, r := range rows {
		views[i] = viewEntry(r.ToDomain())
		if !views[i].Status.IsValid() {
			warnings = append(warnings, &domain.UnknownStatusError{Entity: "waiting list entry", RecordID: r.ID, Value: r.Status})
		}
	}
	reportWarnings(s.logger, warnings)
	toRecord := func(v WaitingEntryView) lifecycle.Record { return lifecycle.WaitingRecord(v.WaitingListEntry) }
	return page(q, views, toRecord, len(warnings)), nil
}

// Create adds a Pending prospect
func (s *WaitingListService) Create(ctx context.Context, input *CreateWaitingInput) (*WaitingEntryView, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("waiting list entry", 0, "name", "is required")
	}
	if input.Budget < 0 {
		return nil, domain.NewValidationError("waiting list entry", 0, "budget", "must not be negative")
	}
	if input.PreferredPropertyID != 0 {
		if _, err := s.propRepo.GetByID(ctx, input.PreferredPropertyID); err != nil {
			return nil, notFound(err, ErrPropertyNotFound)
		}
	}

	e := domain.WaitingListEntry{
		Name:                strings.TrimSpace(input.Name),
		Phone:               input.Phone,
		Email:               input.Email,
		PreferredPropertyID: input.PreferredPropertyID,
		PreferredRoomType:   input.PreferredRoomType,
		DesiredMoveIn:       input.DesiredMoveIn,
		Budget:              input.Budget,
		Notes:               input.Notes,
		Status:              domain.WaitingPending,
	}
	row := models.WaitingListEntryFromDomain(e)
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	v := viewEntry(row.ToDomain())
	return &v, nil
}

// Approve moves a Pending entry to Approved
func (s *WaitingListService) Approve(ctx context.Context, id uint) (*WaitingEntryView, error) {
	return s.apply(ctx, id, lifecycle.ActionApprove)
}

// Reject closes a Pending or Approved entry
func (s *WaitingListService) Reject(ctx context.Context, id uint) (*WaitingEntryView, error) {
	return s.apply(ctx, id, lifecycle.ActionReject)
}

func (s *WaitingListService) apply(ctx context.Context, id uint, action lifecycle.WaitingAction) (*WaitingEntryView, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEntryNotFound)
	}
	next, err := lifecycle.NextWaitingStatus(domain.WaitingStatus(row.Status), action)
	if err != nil {
		return nil, err
	}
	from := row.Status
	row.Status = string(next)
	if err := s.repo.UpdateStatus(ctx, row, from); err != nil {
		return nil, s.lostRace(ctx, err, id, action)
	}
	s.logger.Info("waiting list entry updated", slog.Uint64("entry_id", uint64(id)), slog.String("status", row.Status))
	v := viewEntry(row.ToDomain())
	return &v, nil
}

// Convert turns an Approved entry into a contract. The contract insert and the
// status change commit together or not at all.
func (s *WaitingListService) Convert(ctx context.Context, id uint, input *ConvertInput) (*ConvertResult, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEntryNotFound)
	}
	next, err := lifecycle.NextWaitingStatus(domain.WaitingStatus(row.Status), lifecycle.ActionConvert)
	if err != nil {
		return nil, err
	}
	room, err := s.propRepo.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}

	c := domain.Contract{
		TenantName:  row.Name,
		TenantPhone: row.Phone,
		PropertyID:  room.PropertyID,
		RoomID:      room.ID,
		RoomNumber:  room.Number,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		MonthlyRent: input.MonthlyRent,
		Deposit:     input.Deposit,
		Notes:       row.Notes,
	}
	if c.StartDate.IsZero() {
		c.StartDate = row.DesiredMoveIn
	}
	if c.MonthlyRent == 0 {
		c.MonthlyRent = domain.Money(room.MonthlyRent)
	}
	at := s.clock()
	if _, err := s.policy.DeriveContract(c, at); err != nil {
		return nil, err
	}

	contract := models.ContractFromDomain(c)
	from := row.Status
	row.Status = string(next)
	if err := s.repo.Convert(ctx, row, from, contract); err != nil {
		return nil, s.lostRace(ctx, err, id, lifecycle.ActionConvert)
	}
	c.ID = contract.ID

	view, err := s.policy.DeriveContract(c, at)
	if err != nil {
		return nil, err
	}
	s.logger.Info("waiting list entry converted",
		slog.Uint64("entry_id", uint64(row.ID)),
		slog.Uint64("contract_id", uint64(c.ID)),
	)
	return &ConvertResult{Entry: viewEntry(row.ToDomain()), Contract: view}, nil
}

// lostRace turns a write that found a newer status into a TransitionError from
// that status.
func (s *WaitingListService) lostRace(ctx context.Context, err error, id uint, action lifecycle.WaitingAction) error {
	if !errors.Is(err, repositories.ErrStaleStatus) {
		return err
	}
	current := "a changed status"
	if row, gerr := s.repo.GetByID(ctx, id); gerr == nil {
		current = row.Status
	}
	return &domain.TransitionError{Entity: "waiting list entry", From: current, Action: string(action)}
}
