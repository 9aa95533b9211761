package cmd

import (
	"fmt"
	"strings"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/internal/outwriter"
	"github.com/hoopsdata/combine/internal/store"
	"github.com/hoopsdata/combine/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tableSetup loads minimal configuration needed for table operations.
// This is used by commands that need database access without the season or API settings.
func tableSetup() error {
	if err := loadConfig(); err != nil {
		return err
	}
	if err := contract.ProcessDatabaseConfig(cfg, input); err != nil {
		return err
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output != schema.JSONOut {
		cfg.Output = schema.TextOut
	}
	cfg.OutputFile = input.OutputFile
	return nil
}

// tableSetupWrapper wraps tableSetup to provide PreRunE for table commands.
func tableSetupWrapper(_ *cobra.Command, _ []string) error {
	return tableSetup()
}

// openTable opens the configured table for maintenance.
func openTable() *store.PlayerStoreImpl {
	s, err := store.NewPlayerStore(rootCtx, cfg.Backend, cfg.DBConnect, cfg.Table)
	if err != nil {
		contract.LogFatal(fmt.Sprintf("Failed to open %s store", cfg.Backend), err)
	}
	return s
}

// checkMigrateTable rejects custom tables; the embedded migrations only
// manage the default one.
func checkMigrateTable(table string) error {
	if table != schema.DefaultTable {
		return fmt.Errorf("migrations only manage table %s (received --table %s)", schema.DefaultTable, table)
	}
	return nil
}

// tableCmd focused on table management.
//
// Note: Table subcommands use minimal initialization (tableSetup) instead of
// the full sharedSetup used by the pipeline. This skips the season prompt and
// API settings for simple database operations.
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Manage the draft combine table",
	Long: `Manage the table the scored players are stored in.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (nothing is stored)

Subcommands:
  status  - Show row counts and connection info
  create  - Create the table if it does not exist
  clear   - Drop the table
  migrate - Apply schema migrations to the default table

Examples:
  # Check table status
  combine table status

  # Upgrade a PostgreSQL schema to the latest version
  combine table migrate --db-backend postgresql --db-name nba --db-user etl`,
}

// tableStatusCmd shows table status.
var tableStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display table statistics and connection details",
	Long: `Show whether the table exists, how many players it holds and how many of
them have no current team.

Examples:
  # Check table status as JSON
  combine table status --output json`,
	PreRunE: tableSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		s := openTable()
		defer func() { _ = s.Close() }()

		status, err := s.Status(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to get table status", err)
		}
		if err := outwriter.NewOutWriter().WriteTableStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write table status", err)
		}
	},
}

// tableCreateCmd creates the table.
var tableCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create the draft combine table if it does not exist",
	Long: `Create the configured table ahead of a run. Runs create it on demand as
well, so this is only needed to prepare permissions or inspect the schema.

Examples:
  # Create a custom table in SQLite
  combine table create --table combine_2019`,
	PreRunE: tableSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.Backend == schema.NoneBackend {
			fmt.Println("Nothing to create for the none backend.")
			return
		}
		s := openTable()
		defer func() { _ = s.Close() }()

		if err := s.EnsureTable(rootCtx); err != nil {
			contract.LogFatal("Failed to create table", err)
		}
		fmt.Printf("Table %s is ready.\n", cfg.Table)
	},
}

// tableClearCmd drops the table.
var tableClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the draft combine table",
	Long: `Drop the configured table and every player in it. The next run creates
the table again and inserts every player.

Examples:
  # Clear MySQL data (set connection string via env variable)
  COMBINE_DB_BACKEND=mysql COMBINE_DB_CONNECT="..." combine table clear`,
	PreRunE: tableSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		s := openTable()
		defer func() { _ = s.Close() }()

		if err := s.Drop(rootCtx); err != nil {
			contract.LogFatal("Failed to clear table", err)
		}
		fmt.Println("Table cleared successfully.")
	},
}

// tableMigrateCmd applies schema migrations.
var tableMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema migrations to the draft combine table",
	Long: `Migrate the default table to a schema version. Custom --table names are
rejected; create those with "combine table create" instead.

Versions:
  1 - create the table
  2 - index players by team

Examples:
  # Migrate to the latest version
  combine table migrate

  # Roll back every migration
  combine table migrate --target-version 0`,
	PreRunE: tableSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := checkMigrateTable(cfg.Table); err != nil {
			contract.LogFatal("Failed to migrate table", err)
		}
		target := viper.GetInt("target-version")
		if err := store.Migrate(rootCtx, cfg.Backend, cfg.DBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate table", err)
		}
	},
}
