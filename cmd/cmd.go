// Package cmd defines the command-line interface for combine.
package cmd

import (
	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the table subcommands to the parent table command
	tableCmd.AddCommand(tableStatusCmd)
	tableCmd.AddCommand(tableCreateCmd)
	tableCmd.AddCommand(tableClearCmd)
	tableCmd.AddCommand(tableMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("season", "", "Draft class to score, e.g. 2019-20 (prompted when omitted on a terminal)")
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "Database backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Raw database connection string (overrides the discrete db-* settings)")
	rootCmd.PersistentFlags().String("db-host", contract.DefaultDBHost, "Database host for mysql/postgresql")
	rootCmd.PersistentFlags().Int("db-port", 0, "Database port for mysql/postgresql (0 = backend default)")
	rootCmd.PersistentFlags().String("db-name", "", "Database name, or the SQLite file path")
	rootCmd.PersistentFlags().String("db-user", "", "Database user for mysql/postgresql")
	rootCmd.PersistentFlags().String("db-password", "", "Database password (prefer COMBINE_DB_PASSWORD)")
	rootCmd.PersistentFlags().String("table", schema.DefaultTable, "Table the players are stored in")
	rootCmd.PersistentFlags().String("api-base-url", contract.DefaultAPIBaseURL, "Base URL of the stats API")
	rootCmd.PersistentFlags().String("api-timeout", contract.DefaultAPITimeout.String(), "Timeout per stats API request (0s = no timeout)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("metrics-file", "", "Optional path to write run metrics in Prometheus text format")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of tableMigrateCmd to Viper
	tableMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(tableMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding table migrate flags", err)
	}
}
