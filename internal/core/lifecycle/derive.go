package lifecycle

import (
	"errors"
	"time"

	"kostdesk/internal/core/domain"
)

const (
	entityContract = "contract"
	entityInvoice  = "invoice"
)

// ContractStatusAt derives a contract status from its end date.
// expired: end date before today; expiring: fewer than ExpiringThresholdDays
// remaining; active otherwise.
func (p Policy) ContractStatusAt(endDate, now time.Time) (domain.ContractStatus, int, error) {
	if err := requireDate(entityContract, 0, "end_date", endDate); err != nil {
		return "", 0, err
	}
	days := p.DaysBetween(endDate, now)
	switch {
	case days < 0:
		return domain.ContractExpired, days, nil
	case days < p.ExpiringThresholdDays:
		return domain.ContractExpiring, days, nil
	default:
		return domain.ContractActive, days, nil
	}
}

// DeriveContract validates a contract and attaches its derived status.
func (p Policy) DeriveContract(c domain.Contract, now time.Time) (domain.ContractView, error) {
	if err := requireDate(entityContract, c.ID, "start_date", c.StartDate); err != nil {
		return domain.ContractView{}, err
	}
	if err := requireDate(entityContract, c.ID, "end_date", c.EndDate); err != nil {
		return domain.ContractView{}, err
	}
	if DateOnly(c.EndDate, p.location()).Before(DateOnly(c.StartDate, p.location())) {
		return domain.ContractView{}, domain.NewValidationError(entityContract, c.ID, "end_date", "is before start_date")
	}
	if c.MonthlyRent < 0 {
		return domain.ContractView{}, domain.NewValidationError(entityContract, c.ID, "monthly_rent", "must not be negative")
	}

	status, days, err := p.ContractStatusAt(c.EndDate, now)
	if err != nil {
		return domain.ContractView{}, withRecord(err, c.ID)
	}
	return domain.ContractView{
		Contract:      c,
		Status:        status,
		DaysRemaining: days,
		Variant:       status.Variant(),
	}, nil
}

// DeriveContracts derives every contract, skipping and reporting invalid ones.
func (p Policy) DeriveContracts(contracts []domain.Contract, now time.Time) Batch[domain.ContractView] {
	return Apply(contracts, func(c domain.Contract) (domain.ContractView, error) {
		return p.DeriveContract(c, now)
	})
}

// InvoiceStatusAt derives an invoice status. Paid and Cancelled are returned
// unchanged; any other known status becomes Overdue once today is past the
// due date and Pending otherwise.
func (p Policy) InvoiceStatusAt(current domain.InvoiceStatus, dueDate, now time.Time) (domain.InvoiceStatus, error) {
	if current.IsTerminal() {
		return current, nil
	}
	if !current.IsValid() {
		return "", &domain.UnknownStatusError{Entity: entityInvoice, Value: string(current)}
	}
	if err := requireDate(entityInvoice, 0, "due_date", dueDate); err != nil {
		return "", err
	}
	if p.IsPast(dueDate, now) {
		return domain.InvoiceOverdue, nil
	}
	return domain.InvoicePending, nil
}

// DeriveInvoice validates an invoice and attaches its derived status.
// An unknown stored status yields a view in the unknown bucket together with
// an UnknownStatusError.
func (p Policy) DeriveInvoice(inv domain.Invoice, now time.Time) (domain.InvoiceView, error) {
	if inv.Amount < 0 {
		return domain.InvoiceView{}, domain.NewValidationError(entityInvoice, inv.ID, "amount", "must not be negative")
	}
	if err := requireDate(entityInvoice, inv.ID, "issue_date", inv.IssueDate); err != nil {
		return domain.InvoiceView{}, err
	}
	if err := requireDate(entityInvoice, inv.ID, "due_date", inv.DueDate); err != nil {
		return domain.InvoiceView{}, err
	}
	if DateOnly(inv.DueDate, p.location()).Before(DateOnly(inv.IssueDate, p.location())) {
		return domain.InvoiceView{}, domain.NewValidationError(entityInvoice, inv.ID, "due_date", "is before issue_date")
	}

	view := domain.InvoiceView{
		Invoice:      inv,
		DaysUntilDue: p.DaysBetween(inv.DueDate, now),
	}

	status, err := p.InvoiceStatusAt(inv.Status, inv.DueDate, now)
	if err != nil {
		err = withRecord(err, inv.ID)
		var u *domain.UnknownStatusError
		if errors.As(err, &u) {
			view.DerivedStatus = domain.InvoiceStatus(domain.StatusUnknown)
			view.Variant = domain.VariantUnknown
			return view, u
		}
		return domain.InvoiceView{}, err
	}
	view.DerivedStatus = status
	view.Variant = status.Variant()
	return view, nil
}

// withRecord stamps id onto a record error raised without one.
func withRecord(err error, id uint) error {
	var v *domain.ValidationError
	if errors.As(err, &v) && v.RecordID == 0 {
		v.RecordID = id
	}
	var u *domain.UnknownStatusError
	if errors.As(err, &u) && u.RecordID == 0 {
		u.RecordID = id
	}
	return err
}

// DeriveInvoices derives every invoice, bucketing unknown statuses and
// skipping invalid records.
func (p Policy) DeriveInvoices(invoices []domain.Invoice, now time.Time) Batch[domain.InvoiceView] {
	return Apply(invoices, func(inv domain.Invoice) (domain.InvoiceView, error) {
		return p.DeriveInvoice(inv, now)
	})
}

// RoomOccupancy derives whether a room is available, occupied or under maintenance.
// Contracts for other rooms are ignored, as are contracts that fail validation.
func (p Policy) RoomOccupancy(room domain.Room, contracts []domain.Contract, now time.Time) domain.Occupancy {
	if room.UnderMaintenance {
		return domain.RoomMaintenance
	}
	for _, c := range contracts {
		if c.RoomID != room.ID {
			continue
		}
		if !c.StartDate.IsZero() && p.DaysBetween(c.StartDate, now) > 0 {
			continue
		}
		v, err := p.DeriveContract(c, now)
		if err != nil {
			continue
		}
		if v.Status != domain.ContractExpired {
			return domain.RoomOccupied
		}
	}
	return domain.RoomAvailable
}
