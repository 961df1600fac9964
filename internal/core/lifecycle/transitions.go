package lifecycle

import (
	"time"

	"kostdesk/internal/core/domain"
)

// WaitingAction is an operator action on a waiting-list entry.
type WaitingAction string

const (
	ActionApprove WaitingAction = "approve"
	ActionReject  WaitingAction = "reject"
	ActionConvert WaitingAction = "convert"
)

// NextWaitingStatus applies action to current.
//
//	Pending  --approve--> Approved --convert--> Converted
//	Pending  --reject---> Rejected
//	Approved --reject---> Rejected
func NextWaitingStatus(current domain.WaitingStatus, action WaitingAction) (domain.WaitingStatus, error) {
	if !current.IsValid() {
		return "", &domain.UnknownStatusError{Entity: "waiting list entry", Value: string(current)}
	}
	switch {
	case current == domain.WaitingPending && action == ActionApprove:
		return domain.WaitingApproved, nil
	case current == domain.WaitingPending && action == ActionReject:
		return domain.WaitingRejected, nil
	case current == domain.WaitingApproved && action == ActionReject:
		return domain.WaitingRejected, nil
	case current == domain.WaitingApproved && action == ActionConvert:
		return domain.WaitingConverted, nil
	}
	return "", &domain.TransitionError{Entity: "waiting list entry", From: string(current), Action: string(action)}
}

// WaitingActions lists the actions available from current, for rendering buttons.
func WaitingActions(current domain.WaitingStatus) []WaitingAction {
	var out []WaitingAction
	for _, a := range []WaitingAction{ActionApprove, ActionReject, ActionConvert} {
		if _, err := NextWaitingStatus(current, a); err == nil {
			out = append(out, a)
		}
	}
	return out
}

// SetTicketStatus moves a ticket to status, stamping CompletedAt when it is
// completed and clearing it when reopened. The input is not modified.
func SetTicketStatus(t domain.MaintenanceTicket, status domain.TicketStatus, at time.Time) (domain.MaintenanceTicket, error) {
	if !status.IsValid() {
		return t, domain.NewValidationError("maintenance ticket", t.ID, "status", "must be one of Pending, In Progress, Completed")
	}
	t.Status = status
	if status == domain.TicketCompleted {
		done := at
		t.CompletedAt = &done
	} else {
		t.CompletedAt = nil
	}
	return t, nil
}

func SetTodoStatus(t domain.TodoTask, status domain.TodoStatus) (domain.TodoTask, error) {
	if !status.IsValid() {
		return t, domain.NewValidationError("todo", t.ID, "status", "must be one of Todo, In Progress, Done")
	}
	t.Status = status
	return t, nil
}

// openInvoice reports whether a stored invoice status still accepts operator actions.
// A stored Overdue comes from older data and is treated as Pending.
func openInvoice(s domain.InvoiceStatus) bool {
	return s == domain.InvoicePending || s == domain.InvoiceOverdue
}

// PayInvoice marks an open invoice as paid at the given time.
func PayInvoice(inv domain.Invoice, at time.Time) (domain.Invoice, error) {
	if !openInvoice(inv.Status) {
		return inv, &domain.TransitionError{Entity: entityInvoice, From: string(inv.Status), Action: "pay"}
	}
	paid := at
	inv.Status = domain.InvoicePaid
	inv.PaidAt = &paid
	return inv, nil
}

// CancelInvoice cancels an open invoice.
func CancelInvoice(inv domain.Invoice) (domain.Invoice, error) {
	if !openInvoice(inv.Status) {
		return inv, &domain.TransitionError{Entity: entityInvoice, From: string(inv.Status), Action: "cancel"}
	}
	inv.Status = domain.InvoiceCancelled
	return inv, nil
}
