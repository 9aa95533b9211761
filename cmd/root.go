package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd fetches, scores and stores one draft class.
var rootCmd = &cobra.Command{
	Use:   "combine [season]",
	Short: "Score NBA draft combine results and store them in a database.",
	Long: `Combine pulls the draft combine measurements of one draft class from stats.nba.com,
looks up every player's current team, scores vertical leap, three quarter sprint and
bench press against the class average (100 = average), and inserts each player into a
relational table exactly once.

Examples:
  # Score the 2019-20 class into the default SQLite database
  combine 2019-20

  # Store into PostgreSQL and export the scored players as CSV
  COMBINE_DB_PASSWORD=secret combine 2021-22 --db-backend postgresql --db-name nba \
    --db-user etl --output csv --output-file combine.csv`,
	Version:            version,
	Args:               cobra.MaximumNArgs(1),
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runPipeline(rootCtx)
	},
}

// initConfig sets up config file discovery and ENV variables.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".combine") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("COMBINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("db-backend", string(schema.SQLiteBackend))
	viper.SetDefault("table", schema.DefaultTable)
	viper.SetDefault("api-base-url", contract.DefaultAPIBaseURL)
	viper.SetDefault("api-timeout", contract.DefaultAPITimeout.String())
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("color", "yes")
}

// loadConfig reads the config file, if any, and unmarshals every resolved
// value into the raw input struct.
func loadConfig() error {
	// Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	return nil
}

// sharedSetup unmarshals config, resolves the season and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	// Positional arguments are not handled by Viper.
	if len(args) == 1 {
		input.SeasonArg = args[0]
	}

	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	if cfg.Season == "" {
		season, err := resolveSeason(stdinReader(), promptWriter, isInteractive())
		if err != nil {
			return err
		}
		cfg.Season = season
	}
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
