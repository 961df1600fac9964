package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// maintenanceRepository implements MaintenanceRepository interface
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance ticket repository
func NewMaintenanceRepository(db *gorm.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) Create(ctx context.Context, ticket *models.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id uint) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	if err := r.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, ticket *models.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

// List lists tickets newest report first
func (r *maintenanceRepository) List(ctx context.Context) ([]*models.MaintenanceTicket, error) {
	var tickets []*models.MaintenanceTicket
	err := r.db.WithContext(ctx).Order("reported_at DESC, id DESC").Find(&tickets).Error
	return tickets, err
}
