package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/habitloop/habitloop/internal/db"
	"github.com/habitloop/habitloop/internal/logger"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, db.RunMigrations)
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, db.MigrateDown)
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, nil)
		},
	})

	return migrateCmd
}

func runMigrate(cmd *cobra.Command, step func(ctx context.Context, db *sql.DB, driver string) error) error {
	cfg := loadConfig()
	defer logger.Flush()

	conn, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	ctx := cmd.Context()
	if step != nil {
		if err := step(ctx, conn.DB, cfg.DBDriver); err != nil {
			return err
		}
	}

	version, err := db.Version(ctx, conn.DB, cfg.DBDriver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return nil
}
