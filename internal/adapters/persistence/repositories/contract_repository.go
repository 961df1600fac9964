package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// contractRepository implements ContractRepository interface
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

// Create creates a new contract
func (r *contractRepository) Create(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

// GetByID gets a contract with its room
func (r *contractRepository) GetByID(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	if err := r.db.WithContext(ctx).Preload("Room").First(&contract, id).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

// Update updates a contract
func (r *contractRepository) Update(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Omit("Room").Save(contract).Error
}

// List lists all contracts ordered by end date
func (r *contractRepository) List(ctx context.Context) ([]*models.Contract, error) {
	var contracts []*models.Contract
	err := r.db.WithContext(ctx).
		Preload("Room").
		Order("end_date ASC, id ASC").
		Find(&contracts).Error
	return contracts, err
}

// ListByRoom lists the contracts of one room
func (r *contractRepository) ListByRoom(ctx context.Context, roomID uint) ([]*models.Contract, error) {
	var contracts []*models.Contract
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("room_id = ?", roomID).
		Order("start_date ASC").
		Find(&contracts).Error
	return contracts, err
}
