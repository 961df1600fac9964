package domain

import "time"

// User represents a dashboard operator
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Property is a managed building
type Property struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

// Room is a rentable unit inside a property
type Room struct {
	ID               uint   `json:"id"`
	PropertyID       uint   `json:"property_id"`
	Number           string `json:"number"`
	Floor            int    `json:"floor"`
	Type             string `json:"type"`
	MonthlyRent      Money  `json:"monthly_rent"`
	UnderMaintenance bool   `json:"under_maintenance"`
}

// RoomView is a room plus its derived occupancy
type RoomView struct {
	Room
	Occupancy Occupancy `json:"occupancy"`
	Variant   Variant   `json:"variant"`
}

// PropertyView is a property with room occupancy counts
type PropertyView struct {
	Property
	Rooms     int               `json:"rooms"`
	Occupancy map[Occupancy]int `json:"occupancy"`
}

// Contract is a rental agreement between a tenant and a room
type Contract struct {
	ID          uint      `json:"id"`
	TenantName  string    `json:"tenant_name"`
	TenantPhone string    `json:"tenant_phone"`
	PropertyID  uint      `json:"property_id"`
	RoomID      uint      `json:"room_id"`
	RoomNumber  string    `json:"room_number"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	MonthlyRent Money     `json:"monthly_rent"`
	Deposit     Money     `json:"deposit"`
	Notes       string    `json:"notes"`
}

// ContractView is a contract with its derived lifecycle fields
type ContractView struct {
	Contract
	Status        ContractStatus `json:"status"`
	DaysRemaining int            `json:"days_remaining"`
	Variant       Variant        `json:"variant"`
}

// Invoice is a bill issued against a contract
type Invoice struct {
	ID          uint          `json:"id"`
	Number      string        `json:"number"`
	ContractID  uint          `json:"contract_id"`
	TenantName  string        `json:"tenant_name"`
	Description string        `json:"description"`
	Amount      Money         `json:"amount"`
	IssueDate   time.Time     `json:"issue_date"`
	DueDate     time.Time     `json:"due_date"`
	Status      InvoiceStatus `json:"stored_status"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
}

// InvoiceView is an invoice with the status derived at read time
type InvoiceView struct {
	Invoice
	DerivedStatus InvoiceStatus `json:"status"`
	DaysUntilDue  int           `json:"days_until_due"`
	Variant       Variant       `json:"variant"`
}

// MaintenanceTicket is a repair request; its status only changes by operator action
type MaintenanceTicket struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Priority    Priority     `json:"priority"`
	RoomID      uint         `json:"room_id"`
	Location    string       `json:"location"`
	AssignedTo  string       `json:"assigned_to"`
	ReportedAt  time.Time    `json:"reported_at"`
	ScheduledAt *time.Time   `json:"scheduled_at,omitempty"`
	Status      TicketStatus `json:"status"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	Cost        Money        `json:"cost"`
}

// TodoTask is an operator task
type TodoTask struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     time.Time  `json:"due_date"`
	AssignedTo  string     `json:"assigned_to"`
	Status      TodoStatus `json:"status"`
}

// WaitingListEntry is a prospective tenant waiting for a room
type WaitingListEntry struct {
	ID                  uint          `json:"id"`
	Name                string        `json:"name"`
	Phone               string        `json:"phone"`
	Email               string        `json:"email"`
	PreferredPropertyID uint          `json:"preferred_property_id"`
	PreferredRoomType   string        `json:"preferred_room_type"`
	DesiredMoveIn       time.Time     `json:"desired_move_in"`
	Budget              Money         `json:"budget"`
	Notes               string        `json:"notes"`
	Status              WaitingStatus `json:"status"`
	ContractID          *uint         `json:"contract_id,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}

// CashFlowEntry is one line of the income/expense ledger
type CashFlowEntry struct {
	ID          uint           `json:"id"`
	Kind        CashFlowKind   `json:"kind"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Amount      Money          `json:"amount"`
	Date        time.Time      `json:"date"`
	Status      CashFlowStatus `json:"status"`
}

// CalendarEvent is the uniform shape every dated entity is projected into
type CalendarEvent struct {
	ID         string    `json:"id"`
	SourceID   uint      `json:"source_id"`
	Title      string    `json:"title"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Type       EventType `json:"type"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	AssignedTo string    `json:"assigned_to"`
}
