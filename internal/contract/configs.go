package contract

import (
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/hoopsdata/combine/schema"
)

// Default values for configuration.
const (
	DefaultAPIBaseURL   = "https://stats.nba.com/stats"
	DefaultAPITimeout   = 30 * time.Second
	DefaultPrecision    = 2
	DefaultDBHost       = "localhost"
	DefaultMySQLPort    = 3306
	DefaultPostgresPort = 5432
)

// Config holds the runtime configuration for a pipeline run.
// This struct is the "final, validated" config.
type Config struct {
	Season string

	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext
	Table     string

	APIBaseURL string
	APITimeout time.Duration // 0 = transport default

	Output      schema.OutputMode
	OutputFile  string
	MetricsFile string
	Precision   int
	UseColors   bool
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args or the prompt, so no tag
	SeasonArg string

	Season      string `mapstructure:"season"`
	DBBackend   string `mapstructure:"db-backend"`
	DBConnect   string `mapstructure:"db-connect"`
	DBHost      string `mapstructure:"db-host"`
	DBPort      int    `mapstructure:"db-port"`
	DBName      string `mapstructure:"db-name"`
	DBUser      string `mapstructure:"db-user"`
	DBPassword  string `mapstructure:"db-password"`
	Table       string `mapstructure:"table"`
	APIBaseURL  string `mapstructure:"api-base-url"`
	APITimeout  string `mapstructure:"api-timeout"`
	Output      string `mapstructure:"output"`
	OutputFile  string `mapstructure:"output-file"`
	MetricsFile string `mapstructure:"metrics-file"`
	Precision   int    `mapstructure:"precision"`
	Color       string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ProcessDatabaseConfig validates only the database part of the input.
// The table subcommands need nothing else.
func ProcessDatabaseConfig(cfg *Config, input *ConfigRawInput) error {
	return validateBackendConfig(cfg, input)
}

// validateSimpleInputs processes and validates all non-database fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Season: positional argument wins over flag/env/config ---
	cfg.Season = strings.TrimSpace(input.Season)
	if arg := strings.TrimSpace(input.SeasonArg); arg != "" {
		cfg.Season = arg
	}
	if cfg.Season != "" {
		if err := ValidateSeason(cfg.Season); err != nil {
			return err
		}
	}

	// --- 2. API settings ---
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(input.APIBaseURL), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if !strings.HasPrefix(cfg.APIBaseURL, "http://") && !strings.HasPrefix(cfg.APIBaseURL, "https://") {
		return fmt.Errorf("api-base-url must start with http:// or https:// (received %q)", input.APIBaseURL)
	}
	cfg.APITimeout = DefaultAPITimeout
	if input.APITimeout != "" {
		d, err := time.ParseDuration(input.APITimeout)
		if err != nil {
			return fmt.Errorf("invalid api-timeout %q: %w", input.APITimeout, err)
		}
		if d < 0 {
			return fmt.Errorf("api-timeout cannot be negative (received %s)", d)
		}
		cfg.APITimeout = d
	}

	// --- 3. Output ---
	output := input.Output
	if output == "" {
		output = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(strings.ToLower(output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	cfg.MetricsFile = input.MetricsFile

	// --- 4. Precision ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 5. Color ---
	color := input.Color
	if color == "" {
		color = "yes"
	}
	colors, err := ParseBoolString(color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// validateBackendConfig resolves the backend and its connection string.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := input.DBBackend
	if backend == "" {
		backend = string(schema.SQLiteBackend)
	}
	cfg.Backend = schema.DatabaseBackend(strings.ToLower(backend))
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid db backend '%s'. must be sqlite, mysql, postgresql, none", input.DBBackend)
	}

	cfg.Table = input.Table
	if cfg.Table == "" {
		cfg.Table = schema.DefaultTable
	}

	cfg.DBConnect = input.DBConnect
	if cfg.DBConnect == "" {
		cfg.DBConnect = BuildConnectionString(cfg.Backend, input.DBHost, input.DBPort, input.DBName, input.DBUser, input.DBPassword)
	}
	return ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect)
}

var seasonPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ValidateSeason checks that a draft class is written like the stats API
// expects, e.g. 2019-20, with the second year following the first.
func ValidateSeason(season string) error {
	m := seasonPattern.FindStringSubmatch(season)
	if m == nil {
		return fmt.Errorf("invalid season %q (expected format YYYY-YY, e.g. %s)", season, schema.DefaultSeason)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if (start+1)%100 != end {
		return fmt.Errorf("invalid season %q: %02d does not follow %d", season, end, start)
	}
	return nil
}

// BuildConnectionString assembles a driver-specific connection string from
// discrete host, port, database name, user and password settings.
func BuildConnectionString(backend schema.DatabaseBackend, host string, port int, dbName, user, password string) string {
	if host == "" {
		host = DefaultDBHost
	}
	switch backend {
	case schema.SQLiteBackend:
		if dbName == "" {
			return GetDBFilePath()
		}
		return dbName

	case schema.MySQLBackend:
		if dbName == "" {
			return ""
		}
		if port == 0 {
			port = DefaultMySQLPort
		}
		mc := mysql.NewConfig()
		mc.User = user
		mc.Passwd = password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
		mc.DBName = dbName
		mc.ParseTime = true
		return mc.FormatDSN()

	case schema.PostgreSQLBackend:
		if dbName == "" {
			return ""
		}
		if port == 0 {
			port = DefaultPostgresPort
		}
		parts := []string{
			pgKeyValue("host", host),
			pgKeyValue("port", strconv.Itoa(port)),
			pgKeyValue("dbname", dbName),
		}
		if user != "" {
			parts = append(parts, pgKeyValue("user", user))
		}
		if password != "" {
			parts = append(parts, pgKeyValue("password", password))
		}
		return strings.Join(parts, " ")

	default:
		return ""
	}
}

// pgKeyValue renders one keyword/value pair, quoting values libpq would split.
func pgKeyValue(key, value string) string {
	if value != "" && !strings.ContainsAny(value, " '\\") {
		return key + "=" + value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return fmt.Sprintf("%s='%s'", key, escaped)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect or db-name is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect or db-name is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
