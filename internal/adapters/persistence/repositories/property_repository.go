package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// propertyRepository implements PropertyRepository interface
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

// Create creates a new property
func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

// GetByID gets a property with its rooms
func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// List lists all properties with their rooms
func (r *propertyRepository) List(ctx context.Context) ([]*models.Property, error) {
	var properties []*models.Property
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Order("name ASC").
		Find(&properties).Error
	return properties, err
}

// CreateRoom creates a room inside a property
func (r *propertyRepository) CreateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// GetRoom gets a room by ID
func (r *propertyRepository) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom updates a room
func (r *propertyRepository) UpdateRoom(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// ListRooms lists rooms, optionally of one property (propertyID 0 means all)
func (r *propertyRepository) ListRooms(ctx context.Context, propertyID uint) ([]*models.Room, error) {
	var rooms []*models.Room
	q := r.db.WithContext(ctx).Order("property_id ASC, number ASC")
	if propertyID != 0 {
		q = q.Where("property_id = ?", propertyID)
	}
	err := q.Find(&rooms).Error
	return rooms, err
}
