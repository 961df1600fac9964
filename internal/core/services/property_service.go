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

// PropertyService manages buildings and rooms. Room occupancy is derived
// from the maintenance flag and the room's contracts.
type PropertyService struct {
	repo         repositories.PropertyRepository
	contractRepo repositories.ContractRepository
	policy       lifecycle.Policy
	clock        Clock
	logger       *slog.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(
	repo repositories.PropertyRepository,
	contractRepo repositories.ContractRepository,
	policy lifecycle.Policy,
	clock Clock,
	logger *slog.Logger,
) *PropertyService {
	return &PropertyService{
		repo:         repo,
		contractRepo: contractRepo,
		policy:       policy,
		clock:        orClock(clock),
		logger:       orDefault(logger),
	}
}

// CreatePropertyInput represents create property input
type CreatePropertyInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// CreateRoomInput represents create room input
type CreateRoomInput struct {
	Number      string       `json:"number"`
	Floor       int          `json:"floor"`
	Type        string       `json:"type"`
	MonthlyRent domain.Money `json:"monthly_rent"`
}

func (s *PropertyService) contracts(ctx context.Context) ([]domain.Contract, error) {
	rows, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return contractsToDomain(rows), nil
}

func (s *PropertyService) viewRoom(r *models.Room, contracts []domain.Contract, at time.Time) domain.RoomView {
	occ := s.policy.RoomOccupancy(r.ToDomain(), contracts, at)
	return domain.RoomView{Room: r.ToDomain(), Occupancy: occ, Variant: occ.Variant()}
}

// List returns every property with its room occupancy counts
func (s *PropertyService) List(ctx context.Context, today *time.Time) ([]domain.PropertyView, error) {
	props, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts(ctx)
	if err != nil {
		return nil, err
	}
	at := now(today, s.clock)

	out := make([]domain.PropertyView, 0, len(props))
	for _, p := range props {
		views := make([]domain.RoomView, len(p.Rooms))
		for i := range p.Rooms {
			views[i] = s.viewRoom(&p.Rooms[i], contracts, at)
		}
		out = append(out, domain.PropertyView{
			Property:  p.ToDomain(),
			Rooms:     len(views),
			Occupancy: occupancyCounts(views),
		})
	}
	return out, nil
}

func occupancyCounts(rooms []domain.RoomView) map[domain.Occupancy]int {
	counts := lifecycle.SummaryCounts(rooms, domain.Occupancies, func(v domain.RoomView) domain.Occupancy { return v.Occupancy })
	out := make(map[domain.Occupancy]int, len(counts))
	for k, v := range counts {
		out[domain.Occupancy(k)] = v
	}
	return out
}

// Create adds a property
func (s *PropertyService) Create(ctx context.Context, input *CreatePropertyInput) (*domain.Property, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.NewValidationError("property", 0, "name", "is required")
	}
	row := models.PropertyFromDomain(domain.Property{
		Name:        strings.TrimSpace(input.Name),
		Address:     input.Address,
		Description: input.Description,
	})
	if err := s.repo.Create(ctx, row); err != nil {
		return nil, err
	}
	p := row.ToDomain()
	return &p, nil
}

// ListRooms returns one page of a property's rooms with derived occupancy
func (s *PropertyService) ListRooms(ctx context.Context, propertyID uint, q ListQuery) (*ListResult[domain.RoomView], error) {
	if _, err := s.repo.GetByID(ctx, propertyID); err != nil {
		return nil, notFound(err, ErrPropertyNotFound)
	}
	rooms, err := s.repo.ListRooms(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts(ctx)
	if err != nil {
		return nil, err
	}
	at := now(q.Today, s.clock)

	views := make([]domain.RoomView, len(rooms))
	for i, r := range rooms {
		views[i] = s.viewRoom(r, contracts, at)
	}
	return page(q, views, lifecycle.RoomRecord, 0), nil
}

// CreateRoom adds a room to a property
func (s *PropertyService) CreateRoom(ctx context.Context, propertyID uint, input *CreateRoomInput) (*domain.RoomView, error) {
	if _, err := s.repo.GetByID(ctx, propertyID); err != nil {
		return nil, notFound(err, ErrPropertyNotFound)
	}
	if strings.TrimSpace(input.Number) == "" {
		return nil, domain.NewValidationError("room", 0, "number", "is required")
	}
	if input.MonthlyRent < 0 {
		return nil, domain.NewValidationError("room", 0, "monthly_rent", "must not be negative")
	}
	floor := input.Floor
	if floor == 0 {
		floor = 1
	}

	row := models.RoomFromDomain(domain.Room{
		PropertyID:  propertyID,
		Number:      strings.TrimSpace(input.Number),
		Floor:       floor,
		Type:        input.Type,
		MonthlyRent: input.MonthlyRent,
	})
	if err := s.repo.CreateRoom(ctx, row); err != nil {
		return nil, err
	}
	v := domain.RoomView{Room: row.ToDomain(), Occupancy: domain.RoomAvailable, Variant: domain.RoomAvailable.Variant()}
	return &v, nil
}

// SetMaintenance flags or clears a room as under maintenance
func (s *PropertyService) SetMaintenance(ctx context.Context, roomID uint, on bool) (*domain.RoomView, error) {
	row, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	row.UnderMaintenance = on
	if err := s.repo.UpdateRoom(ctx, row); err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	v := s.viewRoom(row, contractsToDomain(contracts), s.clock())
	s.logger.Info("room maintenance flag changed", slog.Uint64("room_id", uint64(roomID)), slog.Bool("under_maintenance", on))
	return &v, nil
}
