package repositories

import (
	"context"
	"errors"
	"fmt"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// waitingListRepository implements WaitingListRepository interface
type waitingListRepository struct {
	db *gorm.DB
}

// NewWaitingListRepository creates a new waiting list repository
func NewWaitingListRepository(db *gorm.DB) WaitingListRepository {
	return &waitingListRepository{db: db}
}

// Create creates a new waiting list entry
func (r *waitingListRepository) Create(ctx context.Context, entry *models.WaitingListEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetByID gets a waiting list entry by ID
func (r *waitingListRepository) GetByID(ctx context.Context, id uint) (*models.WaitingListEntry, error) {
	var entry models.WaitingListEntry
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateStatus writes entry.Status if the stored status is still from
func (r *waitingListRepository) UpdateStatus(ctx context.Context, entry *models.WaitingListEntry, from string) error {
	return setStatusFrom(r.db.WithContext(ctx), &models.WaitingListEntry{}, entry.ID, from, map[string]interface{}{
		"status": entry.Status,
	})
}

// List lists entries oldest first, the order prospects are served in
func (r *waitingListRepository) List(ctx context.Context) ([]*models.WaitingListEntry, error) {
	var entries []*models.WaitingListEntry
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&entries).Error
	return entries, err
}

// Convert creates the contract and links the converted entry to it atomically.
// Nothing is written unless the entry still holds status from.
func (r *waitingListRepository) Convert(ctx context.Context, entry *models.WaitingListEntry, from string, contract *models.Contract) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to start transaction: %w", tx.Error)
	}

	if err := tx.Omit("Room").Create(contract).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create contract: %w", err)
	}

	err := setStatusFrom(tx, &models.WaitingListEntry{}, entry.ID, from, map[string]interface{}{
		"status":      entry.Status,
		"contract_id": contract.ID,
	})
	if err != nil {
		tx.Rollback()
		contract.ID = 0
		if errors.Is(err, ErrStaleStatus) {
			return err
		}
		return fmt.Errorf("failed to update waiting list entry: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		contract.ID = 0
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	entry.ContractID = &contract.ID
	return nil
}
