package repositories

import (
	"context"
	"time"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// refreshTokenRepository implements RefreshTokenRepository interface
type refreshTokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return NewRefreshTokenRepositoryWithClock(db, time.Now)
}

// NewRefreshTokenRepositoryWithClock creates a refresh token repository that
// stamps revocations and expiry checks with now
func NewRefreshTokenRepositoryWithClock(db *gorm.DB, now func() time.Time) RefreshTokenRepository {
	return &refreshTokenRepository{db: db, now: now}
}

func (r *refreshTokenRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("revoked_at IS NULL")
}

func (r *refreshTokenRepository) revokeWhere(ctx context.Context, query string, args ...interface{}) error {
	now := r.now()
	return r.active(ctx).
		Where(query, args...).
		Update("revoked_at", &now).Error
}

// Create creates a new refresh token
func (r *refreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// GetByTokenHash gets an unrevoked refresh token by its hash
func (r *refreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	if err := r.active(ctx).Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// GetByUserID gets all unrevoked refresh tokens for a user
func (r *refreshTokenRepository) GetByUserID(ctx context.Context, userID uint) ([]*models.RefreshToken, error) {
	var tokens []*models.RefreshToken
	if err := r.active(ctx).Where("user_id = ?", userID).Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

// Revoke revokes a refresh token by ID
func (r *refreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	return r.revokeWhere(ctx, "id = ?", id)
}

// RevokeByTokenHash revokes a refresh token by its hash
func (r *refreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	return r.revokeWhere(ctx, "token_hash = ?", tokenHash)
}

// RevokeAllByUserID revokes every session of a user
func (r *refreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID uint) error {
	return r.revokeWhere(ctx, "user_id = ?", userID)
}

// DeleteExpired deletes all expired tokens (cleanup job)
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", r.now()).
		Delete(&models.RefreshToken{}).Error
}

// CountActiveByUserID counts unrevoked, unexpired tokens for a user
func (r *refreshTokenRepository) CountActiveByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.active(ctx).
		Where("user_id = ?", userID).
		Where("expires_at > ?", r.now()).
		Count(&count).Error
	return count, err
}
