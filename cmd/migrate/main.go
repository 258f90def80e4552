package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/domain/approval"
	"rentdesk-backend/internal/domain/billing"
	"rentdesk-backend/internal/domain/contract"
	"rentdesk-backend/internal/domain/directory"
	"rentdesk-backend/internal/domain/property"
	"rentdesk-backend/internal/domain/tenant"
	"rentdesk-backend/internal/infrastructure/db"
)

// models in FK dependency order so AutoMigrate can create constraints
func models() []any {
	return []any{
		&directory.User{},
		&property.Property{},
		&property.Unit{},
		&tenant.Tenant{},
		&contract.Contract{},
		&billing.Invoice{},
		&billing.Payment{},
		&approval.Request{},
	}
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update the schema on the configured backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			gdb, err := db.Open(cfg)
			if err != nil {
				return err
			}
			if err := gdb.AutoMigrate(models()...); err != nil {
				return err
			}
			fmt.Printf("migrated %d tables on %s\n", len(models()), cfg.SelectedBackend())
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which tables exist on the configured backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			gdb, err := db.Open(cfg)
			if err != nil {
				return err
			}
			for _, m := range models() {
				ok := gdb.Migrator().HasTable(m)
				fmt.Printf("%-20T present=%v\n", m, ok)
			}
			return nil
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Schema management for the rentdesk backend",
	}
	rootCmd.AddCommand(upCmd(), statusCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
