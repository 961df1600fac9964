package repositories

import (
	"context"

	"kostdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// invoiceRepository implements InvoiceRepository interface
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create creates a new invoice
func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Omit("Contract").Create(invoice).Error
}

// GetByID gets an invoice with its contract
func (r *invoiceRepository) GetByID(ctx context.Context, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).Preload("Contract").First(&invoice, id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateStatus writes the status and payment of an invoice if the stored
// status is still from
func (r *invoiceRepository) UpdateStatus(ctx context.Context, invoice *models.Invoice, from string) error {
	return setStatusFrom(r.db.WithContext(ctx), &models.Invoice{}, invoice.ID, from, map[string]interface{}{
		"status":  invoice.Status,
		"paid_at": invoice.PaidAt,
	})
}

// List lists all invoices ordered by due date
func (r *invoiceRepository) List(ctx context.Context) ([]*models.Invoice, error) {
	var invoices []*models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Contract").
		Order("due_date ASC, id ASC").
		Find(&invoices).Error
	return invoices, err
}
