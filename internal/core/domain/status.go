package domain

// StatusUnknown is the display bucket for stored values outside an enum.
const StatusUnknown = "unknown"

// Variant is the badge style a presentation layer renders for a status.
type Variant string

const (
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantDestructive Variant = "destructive"
	VariantInfo        Variant = "info"
	VariantSecondary   Variant = "secondary"
	VariantUnknown     Variant = "outline"
)

// ContractStatus is derived from the contract end date, never stored.
type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractExpiring ContractStatus = "expiring"
	ContractExpired  ContractStatus = "expired"
)

// ContractStatuses lists every known contract status in display order.
var ContractStatuses = []ContractStatus{ContractActive, ContractExpiring, ContractExpired}

func (s ContractStatus) String() string { return string(s) }

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractActive, ContractExpiring, ContractExpired:
		return true
	}
	return false
}

func (s ContractStatus) Variant() Variant {
	switch s {
	case ContractActive:
		return VariantSuccess
	case ContractExpiring:
		return VariantWarning
	case ContractExpired:
		return VariantDestructive
	}
	return VariantUnknown
}

// InvoiceStatus. Overdue is derived from Pending and the due date.
type InvoiceStatus string

const (
	InvoicePaid      InvoiceStatus = "Paid"
	InvoicePending   InvoiceStatus = "Pending"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

var InvoiceStatuses = []InvoiceStatus{InvoicePaid, InvoicePending, InvoiceOverdue, InvoiceCancelled}

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoicePaid, InvoicePending, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether derivation must leave the status untouched.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoicePaid || s == InvoiceCancelled
}

func (s InvoiceStatus) Variant() Variant {
	switch s {
	case InvoicePaid:
		return VariantSuccess
	case InvoicePending:
		return VariantWarning
	case InvoiceOverdue:
		return VariantDestructive
	case InvoiceCancelled:
		return VariantSecondary
	}
	return VariantUnknown
}

// TicketStatus is set by operators on maintenance tickets.
type TicketStatus string

const (
	TicketPending    TicketStatus = "Pending"
	TicketInProgress TicketStatus = "In Progress"
	TicketCompleted  TicketStatus = "Completed"
)

var TicketStatuses = []TicketStatus{TicketPending, TicketInProgress, TicketCompleted}

func (s TicketStatus) String() string { return string(s) }

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketPending, TicketInProgress, TicketCompleted:
		return true
	}
	return false
}

func (s TicketStatus) Variant() Variant {
	switch s {
	case TicketPending:
		return VariantWarning
	case TicketInProgress:
		return VariantInfo
	case TicketCompleted:
		return VariantSuccess
	}
	return VariantUnknown
}

// TodoStatus is set by operators on todo tasks.
type TodoStatus string

const (
	TodoOpen       TodoStatus = "Todo"
	TodoInProgress TodoStatus = "In Progress"
	TodoDone       TodoStatus = "Done"
)

var TodoStatuses = []TodoStatus{TodoOpen, TodoInProgress, TodoDone}

func (s TodoStatus) String() string { return string(s) }

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoOpen, TodoInProgress, TodoDone:
		return true
	}
	return false
}

func (s TodoStatus) Variant() Variant {
	switch s {
	case TodoOpen:
		return VariantSecondary
	case TodoInProgress:
		return VariantInfo
	case TodoDone:
		return VariantSuccess
	}
	return VariantUnknown
}

// WaitingStatus is the waiting-list lifecycle. Rejected and Converted are terminal.
type WaitingStatus string

const (
	WaitingPending   WaitingStatus = "Pending"
	WaitingApproved  WaitingStatus = "Approved"
	WaitingRejected  WaitingStatus = "Rejected"
	WaitingConverted WaitingStatus = "Converted"
)

var WaitingStatuses = []WaitingStatus{WaitingPending, WaitingApproved, WaitingRejected, WaitingConverted}

func (s WaitingStatus) String() string { return string(s) }

func (s WaitingStatus) IsValid() bool {
	switch s {
	case WaitingPending, WaitingApproved, WaitingRejected, WaitingConverted:
		return true
	}
	return false
}

func (s WaitingStatus) IsTerminal() bool {
	return s == WaitingRejected || s == WaitingConverted
}

func (s WaitingStatus) Variant() Variant {
	switch s {
	case WaitingPending:
		return VariantWarning
	case WaitingApproved:
		return VariantInfo
	case WaitingRejected:
		return VariantDestructive
	case WaitingConverted:
		return VariantSuccess
	}
	return VariantUnknown
}

// CashFlowStatus of a ledger line. Only Completed lines count toward totals.
type CashFlowStatus string

const (
	CashFlowCompleted CashFlowStatus = "Completed"
	CashFlowPending   CashFlowStatus = "Pending"
)

var CashFlowStatuses = []CashFlowStatus{CashFlowCompleted, CashFlowPending}

func (s CashFlowStatus) String() string { return string(s) }

func (s CashFlowStatus) IsValid() bool {
	switch s {
	case CashFlowCompleted, CashFlowPending:
		return true
	}
	return false
}

func (s CashFlowStatus) Variant() Variant {
	switch s {
	case CashFlowCompleted:
		return VariantSuccess
	case CashFlowPending:
		return VariantWarning
	}
	return VariantUnknown
}

// CashFlowKind separates income from expense lines.
type CashFlowKind string

const (
	CashFlowIncome  CashFlowKind = "income"
	CashFlowExpense CashFlowKind = "expense"
)

func (k CashFlowKind) IsValid() bool {
	return k == CashFlowIncome || k == CashFlowExpense
}

// Occupancy is derived for rooms from their contracts.
type Occupancy string

const (
	RoomAvailable   Occupancy = "available"
	RoomOccupied    Occupancy = "occupied"
	RoomMaintenance Occupancy = "maintenance"
)

var Occupancies = []Occupancy{RoomAvailable, RoomOccupied, RoomMaintenance}

func (o Occupancy) String() string { return string(o) }

func (o Occupancy) IsValid() bool {
	switch o {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	}
	return false
}

func (o Occupancy) Variant() Variant {
	switch o {
	case RoomAvailable:
		return VariantSuccess
	case RoomOccupied:
		return VariantInfo
	case RoomMaintenance:
		return VariantWarning
	}
	return VariantUnknown
}

// Priority of tickets and todos.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) Variant() Variant {
	switch p {
	case PriorityLow:
		return VariantSecondary
	case PriorityMedium:
		return VariantInfo
	case PriorityHigh:
		return VariantWarning
	case PriorityUrgent:
		return VariantDestructive
	}
	return VariantUnknown
}

// EventType of a synthesized calendar event.
type EventType string

const (
	EventCheckIn     EventType = "check_in"
	EventCheckOut    EventType = "check_out"
	EventMaintenance EventType = "maintenance"
	EventTodo        EventType = "todo"
)

var EventTypes = []EventType{EventCheckIn, EventCheckOut, EventMaintenance, EventTodo}

func (t EventType) IsValid() bool {
	switch t {
	case EventCheckIn, EventCheckOut, EventMaintenance, EventTodo:
		return true
	}
	return false
}

// Role represents user role in the system
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleStaff   Role = "STAFF"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}
