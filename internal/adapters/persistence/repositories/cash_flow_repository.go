package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// cashFlowRepository implements CashFlowRepository interface
type cashFlowRepository struct {
	db *gorm.DB
}

// NewCashFlowRepository creates a new cash flow repository
func NewCashFlowRepository(db *gorm.DB) CashFlowRepository {
	return &cashFlowRepository{db: db}
}

func (r *cashFlowRepository) Create(ctx context.Context, entry *models.CashFlowEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List lists ledger lines newest first
func (r *cashFlowRepository) List(ctx context.Context) ([]*models.CashFlowEntry, error) {
	var entries []*models.CashFlowEntry
	err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&entries).Error
	return entries, err
}
