package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userRepository stores dashboard operators
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// first loads the operator whose column equals value
func (r *userRepository) first(ctx context.Context, column string, value interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// count counts operators whose column equals value
func (r *userRepository) count(ctx context.Context, column string, value interface{}) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where(column+" = ?", value).Count(&n).Error
	return n, err
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return r.first(ctx, "id", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.first(ctx, "username", username)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete soft deletes an operator
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// List lists every operator ordered by username
func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.count(ctx, "username", username)
	return n > 0, err
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.count(ctx, "email", email)
	return n > 0, err
}

// CountByRole counts the operators holding role, for the dashboard headcount
func (r *userRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	return r.count(ctx, "role", role)
}
