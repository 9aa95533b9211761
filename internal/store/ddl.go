package store

import (
	"fmt"
	"regexp"

	"github.com/hoopsdata/combine/schema"
)

var tableNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// validateTableName checks if the table name is valid to prevent SQL injection.
func validateTableName(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %s (must match pattern ^[a-zA-Z_][a-zA-Z0-9_]*$)", name)
	}
	return nil
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

// getCreateTableQuery returns the CREATE TABLE query for the combine stats table.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT PRIMARY KEY,
				first_name VARCHAR(100),
				last_name VARCHAR(100),
				team CHAR(3),
				height DOUBLE,
				weight DOUBLE,
				wingspan DOUBLE,
				standing_reach DOUBLE,
				vertical_leap DOUBLE,
				bench_press_reps INT,
				lane_agility_time DOUBLE,
				three_quarter_sprint_time DOUBLE,
				bmi DOUBLE,
				vertical_leap_score DOUBLE,
				three_quarter_sprint_score DOUBLE,
				bench_press_score DOUBLE
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT PRIMARY KEY,
				first_name TEXT,
				last_name TEXT,
				team CHAR(3),
				height DOUBLE PRECISION,
				weight DOUBLE PRECISION,
				wingspan DOUBLE PRECISION,
				standing_reach DOUBLE PRECISION,
				vertical_leap DOUBLE PRECISION,
				bench_press_reps INTEGER,
				lane_agility_time DOUBLE PRECISION,
				three_quarter_sprint_time DOUBLE PRECISION,
				bmi DOUBLE PRECISION,
				vertical_leap_score DOUBLE PRECISION,
				three_quarter_sprint_score DOUBLE PRECISION,
				bench_press_score DOUBLE PRECISION
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY,
				first_name TEXT,
				last_name TEXT,
				team TEXT,
				height REAL,
				weight REAL,
				wingspan REAL,
				standing_reach REAL,
				vertical_leap REAL,
				bench_press_reps INTEGER,
				lane_agility_time REAL,
				three_quarter_sprint_time REAL,
				bmi REAL,
				vertical_leap_score REAL,
				three_quarter_sprint_score REAL,
				bench_press_score REAL
			);
		`, quotedTableName)
	}
}

// getInsertQuery returns the named INSERT for a player row. There is no
// upsert clause: an existing id is reported, never overwritten.
func getInsertQuery(tableName string, backend schema.DatabaseBackend) string {
	return fmt.Sprintf(`INSERT INTO %s (
		id, first_name, last_name, team,
		height, weight, wingspan, standing_reach, vertical_leap,
		bench_press_reps, lane_agility_time, three_quarter_sprint_time, bmi,
		vertical_leap_score, three_quarter_sprint_score, bench_press_score
	) VALUES (
		:id, :first_name, :last_name, :team,
		:height, :weight, :wingspan, :standing_reach, :vertical_leap,
		:bench_press_reps, :lane_agility_time, :three_quarter_sprint_time, :bmi,
		:vertical_leap_score, :three_quarter_sprint_score, :bench_press_score
	)`, quoteTableName(tableName, backend))
}

// getTableExistsQuery returns a query counting tables with the bound name.
func getTableExistsQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	case schema.PostgreSQLBackend:
		return "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?"
	default: // SQLite
		return "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?"
	}
}
