package config

import (
	"fmt"
	"log"
	"time"

	"kostdesk/internal/adapters/persistence/models"
	"kostdesk/internal/core/domain"
	"kostdesk/internal/core/lifecycle"
	"kostdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
	now time.Time
}

// NewSeeder creates a new seeder instance. Demo records are dated around now.
func NewSeeder(db *gorm.DB, cfg *Config, now time.Time) *Seeder {
	return &Seeder{db: db, cfg: cfg, now: now}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		return fmt.Errorf("admin seeder: %w", err)
	}
	if s.cfg.IsDev() {
		if err := s.seedDemoData(); err != nil {
			return fmt.Errorf("demo seeder: %w", err)
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser creates the first ADMIN when none exists.
// The password comes from SEED_ADMIN_PASSWORD and must be changed after login.
func (s *Seeder) seedAdminUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("role = ?", string(domain.RoleAdmin)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plain := getEnv("SEED_ADMIN_PASSWORD", "")
	if plain == "" {
		if s.cfg.IsProd() {
			log.Println("⚠️ Skipping admin seed: SEED_ADMIN_PASSWORD is not set")
			return nil
		}
		plain = "admin123456"
	}
	hashedPassword, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    getEnv("SEED_ADMIN_EMAIL", "admin@kostdesk.id"),
		FullName: "Administrator",
		Password: hashedPassword,
		Role:     string(domain.RoleAdmin),
		IsActive: true,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Username)
	return nil
}

// seedDemoData fills an empty database with one property and a few tenants
func (s *Seeder) seedDemoData() error {
	var count int64
	if err := s.db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := lifecycle.DateOnly(s.now, s.cfg.Policy().Location)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }
	rent := int64(domain.Rupiah(1_500_000))

	return s.db.Transaction(func(tx *gorm.DB) error {
		property := &models.Property{Name: "Kost Melati", Address: "Jl. Melati No. 5, Yogyakarta"}
		if err := tx.Create(property).Error; err != nil {
			return err
		}

		rooms := []*models.Room{
			{PropertyID: property.ID, Number: "A1", Floor: 1, Type: "standard", MonthlyRent: rent},
			{PropertyID: property.ID, Number: "A2", Floor: 1, Type: "standard", MonthlyRent: rent},
			{PropertyID: property.ID, Number: "B1", Floor: 2, Type: "deluxe", MonthlyRent: int64(domain.Rupiah(2_000_000))},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}

		contracts := []*models.Contract{
			{TenantName: "Budi Santoso", TenantPhone: "081234567890", RoomID: rooms[0].ID, StartDate: day(-340), EndDate: day(25), MonthlyRent: rent, Deposit: rent},
			{TenantName: "Sari Dewi", TenantPhone: "081298765432", RoomID: rooms[2].ID, StartDate: day(-60), EndDate: day(305), MonthlyRent: rooms[2].MonthlyRent},
		}
		if err := tx.Create(&contracts).Error; err != nil {
			return err
		}

		paidAt := day(-35)
		invoices := []*models.Invoice{
			{Number: "INV-DEMO-0001", ContractID: contracts[0].ID, Description: "Sewa bulan lalu", Amount: rent, IssueDate: day(-40), DueDate: day(-30), Status: string(domain.InvoicePaid), PaidAt: &paidAt},
			{Number: "INV-DEMO-0002", ContractID: contracts[0].ID, Description: "Sewa bulan ini", Amount: rent, IssueDate: day(-10), DueDate: day(-3), Status: string(domain.InvoicePending)},
			{Number: "INV-DEMO-0003", ContractID: contracts[1].ID, Description: "Sewa bulan ini", Amount: contracts[1].MonthlyRent, IssueDate: day(-5), DueDate: day(5), Status: string(domain.InvoicePending)},
		}
		if err := tx.Create(&invoices).Error; err != nil {
			return err
		}

		scheduled := day(2).Add(10 * time.Hour)
		if err := tx.Create(&models.MaintenanceTicket{
			Title: "Keran bocor", Category: "plumbing", Priority: string(domain.PriorityHigh),
			RoomID: rooms[1].ID, Location: "Room A2", ReportedAt: day(-1), ScheduledAt: &scheduled,
			Status: string(domain.TicketPending),
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.TodoTask{
			Title: "Perpanjang kontrak Budi", Priority: string(domain.PriorityMedium),
			DueDate: day(7), Status: string(domain.TodoOpen),
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.WaitingListEntry{
			Name: "Rina Kartika", Phone: "085612345678", PreferredPropertyID: property.ID,
			PreferredRoomType: "standard", DesiredMoveIn: day(30), Budget: rent,
			Status: string(domain.WaitingPending),
		}).Error; err != nil {
			return err
		}
		cash := []*models.CashFlowEntry{
			{Kind: string(domain.CashFlowIncome), Category: "rent", Description: "Sewa A1", Amount: rent, Date: paidAt, Status: string(domain.CashFlowCompleted)},
			{Kind: string(domain.CashFlowExpense), Category: "utilities", Description: "Listrik", Amount: int64(domain.Rupiah(450_000)), Date: day(-20), Status: string(domain.CashFlowCompleted)},
		}
		if err := tx.Create(&cash).Error; err != nil {
			return err
		}

		log.Printf("✅ Demo data created: %d rooms, %d contracts, %d invoices", len(rooms), len(contracts), len(invoices))
		return nil
	})
}
