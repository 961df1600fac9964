package services

import (
	"context"
	"errors"
	"strings"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/adapters/persistence/repositories"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
	"kostdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrOldPasswordWrong    = errors.New("old password is incorrect")
	ErrWeakPassword        = errors.New("password must be at least 8 characters with a letter and a digit")
	ErrInvalidRole         = errors.New("invalid role")
	ErrCannotDeleteSelf    = errors.New("cannot delete your own account")
	ErrCannotChangeOwnRole = errors.New("cannot change your own role")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents create user input (for admin)
type CreateUserInput struct {
	Username string      `json:"username"`
	Email    string      `json:"email"`
	FullName string      `json:"full_name"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// UpdateUserInput represents update user input (for admin)
type UpdateUserInput struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ListUsers returns one page of users matching q. Filters: role.
func (s *UserService) ListUsers(ctx context.Context, q ListQuery) (*ListResult[domain.User], error) {
	rows, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(rows))
	for i, u := range rows {
		users[i] = u.ToDomain()
	}
	return page(q, users, lifecycle.UserRecord, 0), nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *UserService) get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser creates a dashboard operator
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.UserResponse, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < 3 {
		return nil, domain.NewValidationError("user", 0, "username", "must be at least 3 characters")
	}
	role := input.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if !password.ValidatePassword(input.Password) {
		return nil, ErrWeakPassword
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}
	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username: username,
		Email:    strings.TrimSpace(input.Email),
		FullName: input.FullName,
		Password: hashedPassword,
		Role:     string(role),
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateUser updates a user by admin
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateRole changes a user's role. Admins cannot change their own.
func (s *UserService) UpdateRole(ctx context.Context, id, adminID uint, role domain.Role) (*models.UserResponse, error) {
	if id == adminID {
		return nil, ErrCannotChangeOwnRole
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Role = string(role)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// DeleteUser deletes a user (soft delete)
func (s *UserService) DeleteUser(ctx context.Context, id uint, adminID uint) error {
	if id == adminID {
		return ErrCannotDeleteSelf
	}
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// ChangePassword changes user's password
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.get(ctx, userID)
	if err != nil {
		return err
	}
	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}
	if !password.ValidatePassword(input.NewPassword) {
		return ErrWeakPassword
	}

	hashedPassword, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}
