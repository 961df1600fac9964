package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	GetByUserID(ctx context.Context, userID uint) ([]*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
	CountActiveByUserID(ctx context.Context, userID uint) (int64, error)
}

// PropertyRepository defines property and room repository interface
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uint) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	ListRooms(ctx context.Context, propertyID uint) ([]*models.Room, error)
}

// ContractRepository defines contract repository interface
type ContractRepository interface {
	Create(ctx context.Context, contract *models.Contract) error
	GetByID(ctx context.Context, id uint) (*models.Contract, error)
	Update(ctx context.Context, contract *models.Contract) error
	List(ctx context.Context) ([]*models.Contract, error)
	ListByRoom(ctx context.Context, roomID uint) ([]*models.Contract, error)
}

// InvoiceRepository defines invoice repository interface
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	GetByID(ctx context.Context, id uint) (*models.Invoice, error)
	// UpdateStatus returns ErrStaleStatus when the stored status is no longer from.
	UpdateStatus(ctx context.Context, invoice *models.Invoice, from string) error
	List(ctx context.Context) ([]*models.Invoice, error)
}

// WaitingListRepository defines waiting list repository interface
type WaitingListRepository interface {
	Create(ctx context.Context, entry *models.WaitingListEntry) error
	GetByID(ctx context.Context, id uint) (*models.WaitingListEntry, error)
	// UpdateStatus returns ErrStaleStatus when the stored status is no longer from.
	UpdateStatus(ctx context.Context, entry *models.WaitingListEntry, from string) error
	List(ctx context.Context) ([]*models.WaitingListEntry, error)
	// Convert stores the contract and marks the entry converted in one transaction,
	// provided the entry still holds status from.
	Convert(ctx context.Context, entry *models.WaitingListEntry, from string, contract *models.Contract) error
}

// MaintenanceRepository defines maintenance ticket repository interface
type MaintenanceRepository interface {
	Create(ctx context.Context, ticket *models.MaintenanceTicket) error
	GetByID(ctx context.Context, id uint) (*models.MaintenanceTicket, error)
	Update(ctx context.Context, ticket *models.MaintenanceTicket) error
	List(ctx context.Context) ([]*models.MaintenanceTicket, error)
}

// TodoRepository defines todo repository interface
type TodoRepository interface {
	Create(ctx context.Context, todo *models.TodoTask) error
	GetByID(ctx context.Context, id uint) (*models.TodoTask, error)
	Update(ctx context.Context, todo *models.TodoTask) error
	List(ctx context.Context) ([]*models.TodoTask, error)
}

// CashFlowRepository defines cash flow repository interface
type CashFlowRepository interface {
	Create(ctx context.Context, entry *models.CashFlowEntry) error
	List(ctx context.Context) ([]*models.CashFlowEntry, error)
}
