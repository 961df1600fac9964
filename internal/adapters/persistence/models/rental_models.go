package models

import (
	"time"

	"gorm.io/gorm"

	"kostdesk/internal/core/domain"
)

// ============================================================
// Buildings
// ============================================================

// Property represents properties table
type Property struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"size:100;not null"`
	Address     string         `gorm:"size:255"`
	Description string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	Rooms       []Room         `gorm:"foreignKey:PropertyID"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) ToDomain() domain.Property {
	return domain.Property{ID: p.ID, Name: p.Name, Address: p.Address, Description: p.Description}
}

func PropertyFromDomain(p domain.Property) *Property {
	return &Property{ID: p.ID, Name: p.Name, Address: p.Address, Description: p.Description}
}

// Room represents rooms table
type Room struct {
	ID               uint      `gorm:"primaryKey"`
	PropertyID       uint      `gorm:"not null;index;uniqueIndex:idx_room_property_number"`
	Number           string    `gorm:"size:20;not null;uniqueIndex:idx_room_property_number"`
	Floor            int       `gorm:"default:1"`
	Type             string    `gorm:"size:50"`
	MonthlyRent      int64     `gorm:"not null;default:0"`
	UnderMaintenance bool      `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Room) TableName() string {
	return "rooms"
}

func (r *Room) ToDomain() domain.Room {
	return domain.Room{
		ID:               r.ID,
		PropertyID:       r.PropertyID,
		Number:           r.Number,
		Floor:            r.Floor,
		Type:             r.Type,
		MonthlyRent:      domain.Money(r.MonthlyRent),
		UnderMaintenance: r.UnderMaintenance,
	}
}

func RoomFromDomain(r domain.Room) *Room {
	return &Room{
		ID:               r.ID,
		PropertyID:       r.PropertyID,
		Number:           r.Number,
		Floor:            r.Floor,
		Type:             r.Type,
		MonthlyRent:      int64(r.MonthlyRent),
		UnderMaintenance: r.UnderMaintenance,
	}
}

// ============================================================
// Tenancy
// ============================================================

// Contract represents contracts table. Status is never stored.
type Contract struct {
	ID          uint           `gorm:"primaryKey"`
	TenantName  string         `gorm:"size:150;not null"`
	TenantPhone string         `gorm:"size:30"`
	RoomID      uint           `gorm:"not null;index"`
	StartDate   time.Time      `gorm:"not null"`
	EndDate     time.Time      `gorm:"not null;index"`
	MonthlyRent int64          `gorm:"not null"`
	Deposit     int64          `gorm:"default:0"`
	Notes       string         `gorm:"type:text"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Relations
	Room *Room `gorm:"foreignKey:RoomID"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c *Contract) ToDomain() domain.Contract {
	out := domain.Contract{
		ID:          c.ID,
		TenantName:  c.TenantName,
		TenantPhone: c.TenantPhone,
		RoomID:      c.RoomID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		MonthlyRent: domain.Money(c.MonthlyRent),
		Deposit:     domain.Money(c.Deposit),
		Notes:       c.Notes,
	}
	if c.Room != nil {
		out.RoomNumber = c.Room.Number
		out.PropertyID = c.Room.PropertyID
	}
	return out
}

func ContractFromDomain(c domain.Contract) *Contract {
	return &Contract{
		ID:          c.ID,
		TenantName:  c.TenantName,
		TenantPhone: c.TenantPhone,
		RoomID:      c.RoomID,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		MonthlyRent: int64(c.MonthlyRent),
		Deposit:     int64(c.Deposit),
		Notes:       c.Notes,
	}
}

// Invoice represents invoices table. Only Pending, Paid and Cancelled are written.
type Invoice struct {
	ID          uint       `gorm:"primaryKey"`
	Number      string     `gorm:"size:40;uniqueIndex;not null"`
	ContractID  uint       `gorm:"not null;index"`
	Description string     `gorm:"size:255"`
	Amount      int64      `gorm:"not null"`
	IssueDate   time.Time  `gorm:"not null"`
	DueDate     time.Time  `gorm:"not null;index"`
	Status      string     `gorm:"size:20;not null;default:'Pending';index"`
	PaidAt      *time.Time `gorm:"index"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`

	// Relations
	Contract *Contract `gorm:"foreignKey:ContractID"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) ToDomain() domain.Invoice {
	out := domain.Invoice{
		ID:          i.ID,
		Number:      i.Number,
		ContractID:  i.ContractID,
		Description: i.Description,
		Amount:      domain.Money(i.Amount),
		IssueDate:   i.IssueDate,
		DueDate:     i.DueDate,
		Status:      domain.InvoiceStatus(i.Status),
		PaidAt:      i.PaidAt,
	}
	if i.Contract != nil {
		out.TenantName = i.Contract.TenantName
	}
	return out
}

func InvoiceFromDomain(i domain.Invoice) *Invoice {
	return &Invoice{
		ID:          i.ID,
		Number:      i.Number,
		ContractID:  i.ContractID,
		Description: i.Description,
		Amount:      int64(i.Amount),
		IssueDate:   i.IssueDate,
		DueDate:     i.DueDate,
		Status:      string(i.Status),
		PaidAt:      i.PaidAt,
	}
}

// WaitingListEntry represents waiting_list table
type WaitingListEntry struct {
	ID                  uint      `gorm:"primaryKey"`
	Name                string    `gorm:"size:150;not null"`
	Phone               string    `gorm:"size:30"`
	Email               string    `gorm:"size:100"`
	PreferredPropertyID uint      `gorm:"index"`
	PreferredRoomType   string    `gorm:"size:50"`
	DesiredMoveIn       time.Time `gorm:"index"`
	Budget              int64     `gorm:"default:0"`
	Notes               string    `gorm:"type:text"`
	Status              string    `gorm:"size:20;not null;default:'Pending';index"`
	ContractID          *uint     `gorm:"index"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (WaitingListEntry) TableName() string {
	return "waiting_list"
}

func (w *WaitingListEntry) ToDomain() domain.WaitingListEntry {
	return domain.WaitingListEntry{
		ID:                  w.ID,
		Name:                w.Name,
		Phone:               w.Phone,
		Email:               w.Email,
		PreferredPropertyID: w.PreferredPropertyID,
		PreferredRoomType:   w.PreferredRoomType,
		DesiredMoveIn:       w.DesiredMoveIn,
		Budget:              domain.Money(w.Budget),
		Notes:               w.Notes,
		Status:              domain.WaitingStatus(w.Status),
		ContractID:          w.ContractID,
		CreatedAt:           w.CreatedAt,
	}
}

func WaitingListEntryFromDomain(w domain.WaitingListEntry) *WaitingListEntry {
	return &WaitingListEntry{
		ID:                  w.ID,
		Name:                w.Name,
		Phone:               w.Phone,
		Email:               w.Email,
		PreferredPropertyID: w.PreferredPropertyID,
		PreferredRoomType:   w.PreferredRoomType,
		DesiredMoveIn:       w.DesiredMoveIn,
		Budget:              int64(w.Budget),
		Notes:               w.Notes,
		Status:              string(w.Status),
		ContractID:          w.ContractID,
	}
}

// ============================================================
// Operations
// ============================================================

// MaintenanceTicket represents maintenance_tickets table
type MaintenanceTicket struct {
	ID          uint       `gorm:"primaryKey"`
	Title       string     `gorm:"size:150;not null"`
	Description string     `gorm:"type:text"`
	Category    string     `gorm:"size:50;index"`
	Priority    string     `gorm:"size:10;default:'medium'"`
	RoomID      uint       `gorm:"index"`
	Location    string     `gorm:"size:100"`
	AssignedTo  string     `gorm:"size:100"`
	ReportedAt  time.Time  `gorm:"not null"`
	ScheduledAt *time.Time `gorm:"index"`
	Status      string     `gorm:"size:20;not null;default:'Pending';index"`
	CompletedAt *time.Time `gorm:"index"`
	Cost        int64      `gorm:"default:0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}

func (MaintenanceTicket) TableName() string {
	return "maintenance_tickets"
}

func (t *MaintenanceTicket) ToDomain() domain.MaintenanceTicket {
	return domain.MaintenanceTicket{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    domain.Priority(t.Priority),
		RoomID:      t.RoomID,
		Location:    t.Location,
		AssignedTo:  t.AssignedTo,
		ReportedAt:  t.ReportedAt,
		ScheduledAt: t.ScheduledAt,
		Status:      domain.TicketStatus(t.Status),
		CompletedAt: t.CompletedAt,
		Cost:        domain.Money(t.Cost),
	}
}

func MaintenanceTicketFromDomain(t domain.MaintenanceTicket) *MaintenanceTicket {
	return &MaintenanceTicket{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Priority:    string(t.Priority),
		RoomID:      t.RoomID,
		Location:    t.Location,
		AssignedTo:  t.AssignedTo,
		ReportedAt:  t.ReportedAt,
		ScheduledAt: t.ScheduledAt,
		Status:      string(t.Status),
		CompletedAt: t.CompletedAt,
		Cost:        int64(t.Cost),
	}
}

// TodoTask represents todo_tasks table
type TodoTask struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:150;not null"`
	Description string    `gorm:"type:text"`
	Priority    string    `gorm:"size:10;default:'medium'"`
	DueDate     time.Time `gorm:"not null;index"`
	AssignedTo  string    `gorm:"size:100"`
	Status      string    `gorm:"size:20;not null;default:'Todo'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (TodoTask) TableName() string {
	return "todo_tasks"
}

func (t *TodoTask) ToDomain() domain.TodoTask {
	return domain.TodoTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    domain.Priority(t.Priority),
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		Status:      domain.TodoStatus(t.Status),
	}
}

func TodoTaskFromDomain(t domain.TodoTask) *TodoTask {
	return &TodoTask{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		Status:      string(t.Status),
	}
}

// CashFlowEntry represents cash_flow_entries table
type CashFlowEntry struct {
	ID          uint      `gorm:"primaryKey"`
	Kind        string    `gorm:"size:10;not null;index"`
	Category    string    `gorm:"size:50;index"`
	Description string    `gorm:"size:255"`
	Amount      int64     `gorm:"not null"`
	Date        time.Time `gorm:"not null;index"`
	Status      string    `gorm:"size:20;not null;default:'Completed'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (CashFlowEntry) TableName() string {
	return "cash_flow_entries"
}

func (e *CashFlowEntry) ToDomain() domain.CashFlowEntry {
	return domain.CashFlowEntry{
		ID:          e.ID,
		Kind:        domain.CashFlowKind(e.Kind),
		Category:    e.Category,
		Description: e.Description,
		Amount:      domain.Money(e.Amount),
		Date:        e.Date,
		Status:      domain.CashFlowStatus(e.Status),
	}
}

func CashFlowEntryFromDomain(e domain.CashFlowEntry) *CashFlowEntry {
	return &CashFlowEntry{
		ID:          e.ID,
		Kind:        string(e.Kind),
		Category:    e.Category,
		Description: e.Description,
		Amount:      int64(e.Amount),
		Date:        e.Date,
		Status:      string(e.Status),
	}
}
