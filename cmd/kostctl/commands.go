package main

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"kostdesk/internal/config"
	"kostdesk/internal/core/lifecycle"
	"kostdesk/internal/core/services"
)

type env struct {
	cfg *config.Config
	db  *gorm.DB
	svc *services.Services
}

// open loads the config and database. A non-empty today pins the service
// clock to that calendar day in the configured timezone.
func open(today string) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var clock services.Clock
	if today != "" {
		t, err := lifecycle.ParseDate("flag", 0, "today", today, cfg.Policy().Location)
		if err != nil {
			return nil, err
		}
		clock = func() time.Time { return t }
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(cfg.Log)
	return &env{cfg: cfg, db: db, svc: services.New(db, cfg, logger, clock)}, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open("")
			if err != nil {
				return err
			}
			defer config.CloseDatabase()
			return config.Migrate(e.db)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate, then create the admin user and dev demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open("")
			if err != nil {
				return err
			}
			defer config.CloseDatabase()
			if err := config.Migrate(e.db); err != nil {
				return err
			}
			return config.NewSeeder(e.db, e.cfg, time.Now()).Run()
		},
	}
}

func statusCmd() *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print contract and invoice counts per derived status",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(today)
			if err != nil {
				return err
			}
			defer config.CloseDatabase()

			contracts, err := e.svc.Contract.Summary(cmd.Context(), nil)
			if err != nil {
				return err
			}
			invoices, err := e.svc.Invoice.Summary(cmd.Context(), nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if today != "" {
				fmt.Fprintf(out, "Status at %s\n\n", today)
			}
			printCounts(out, "Contracts", contracts.Counts)
			fmt.Fprintf(out, "  %-12s %s\n\n", "rent", contracts.MonthlyRent.Format())
			printCounts(out, "Invoices", invoices.Counts)
			fmt.Fprintf(out, "  %-12s %s\n", "outstanding", invoices.Outstanding.Format())
			fmt.Fprintf(out, "  %-12s %s\n", "collected", invoices.Collected.Format())
			if n := contracts.Warnings + invoices.Warnings; n > 0 {
				fmt.Fprintf(out, "\n%s\n", lifecycle.WarningMessage(n))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "derive at this date (YYYY-MM-DD)")
	return cmd
}

func sweepCmd() *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the reminder sweep once and send its notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := open(today)
			if err != nil {
				return err
			}
			defer config.CloseDatabase()

			report, err := e.svc.Reminder.RunOnce(cmd.Context())
			if report != nil {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Expiring contracts: %d\n", len(report.ExpiringContracts))
				for _, c := range report.ExpiringContracts {
					fmt.Fprintf(out, "  %-6s %-24s %3d days\n", c.RoomNumber, c.TenantName, c.DaysRemaining)
				}
				fmt.Fprintf(out, "Overdue invoices: %d\n", len(report.OverdueInvoices))
				for _, inv := range report.OverdueInvoices {
					fmt.Fprintf(out, "  %-20s %-24s %s\n", inv.Number, inv.TenantName, inv.Amount.Format())
				}
			}
			return err
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "derive at this date (YYYY-MM-DD)")
	return cmd
}

func printCounts(w io.Writer, title string, counts map[string]int) {
	fmt.Fprintln(w, title)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-12s %d\n", k, counts[k])
	}
}
