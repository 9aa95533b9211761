// Package store persists scored combine players into a relational table.
package store

import (
	"context"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// PlayerStoreImpl writes players over one dedicated connection held for the
// whole run. Each row is its own transaction.
type PlayerStoreImpl struct {
	db          *sqlx.DB
	conn        *sqlx.Conn
	backend     schema.DatabaseBackend
	table       string
	insertQuery string
}

var (
	_ contract.PlayerStore  = &PlayerStoreImpl{} // Compile-time check
	_ contract.TableManager = &PlayerStoreImpl{} // Compile-time check
)

// driverName returns the database/sql driver registered for a backend.
func driverName(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported backend: %s", backend)
	}
}

// openDB opens and pings the database for a backend.
func openDB(ctx context.Context, backend schema.DatabaseBackend, connStr string) (*sqlx.DB, error) {
	name, err := driverName(backend)
	if err != nil {
		return nil, err
	}
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetDBFilePath()
	}

	db, err := sqlx.Open(name, connStr)
	if err != nil {
		switch backend {
		case schema.SQLiteBackend:
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", connStr, err)
		case schema.MySQLBackend:
			return nil, fmt.Errorf("failed to open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		default:
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection string format: host=... port=... dbname=... user=...", err)
		}
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}
	return db, nil
}

// NewPlayerStore opens the backend, verifies it and checks out the run's
// connection. The table is not created here; a missing table is created on
// the first insert that needs it. The none backend returns a store that
// discards everything.
func NewPlayerStore(ctx context.Context, backend schema.DatabaseBackend, connStr, table string) (*PlayerStoreImpl, error) {
	if err := validateTableName(table); err != nil {
		return nil, err
	}
	s := &PlayerStoreImpl{
		backend:     backend,
		table:       table,
		insertQuery: getInsertQuery(table, backend),
	}
	if backend == schema.NoneBackend {
		return s, nil
	}

	db, err := openDB(ctx, backend, connStr)
	if err != nil {
		return nil, err
	}
	conn, err := db.Connx(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to acquire %s connection: %w", backend, err)
	}
	s.db = db
	s.conn = conn
	return s, nil
}

// InsertPlayer writes one player in its own transaction and reports what
// happened. Only a failed outcome carries an error.
func (s *PlayerStoreImpl) InsertPlayer(ctx context.Context, player schema.Player) (schema.InsertOutcome, error) {
	if s.conn == nil {
		return schema.Discarded, nil
	}

	err := s.insert(ctx, player)
	switch cause := classify(err); {
	case err == nil:
		return schema.Inserted, nil
	case errors.Is(cause, ErrDuplicatePlayer):
		return schema.AlreadyExists, nil
	case errors.Is(cause, ErrTableMissing):
		if err := s.EnsureTable(ctx); err != nil {
			return schema.Failed, fmt.Errorf("%w: %w", ErrTableMissing, err)
		}
		retryErr := s.insert(ctx, player)
		if retryErr == nil {
			return schema.SchemaCreated, nil
		}
		if errors.Is(classify(retryErr), ErrDuplicatePlayer) {
			return schema.AlreadyExists, nil
		}
		return schema.Failed, fmt.Errorf("failed to insert player %d after creating table: %w", player.ID, retryErr)
	case errors.Is(cause, ErrAbortedTx):
		return schema.Failed, fmt.Errorf("%w: %w", ErrAbortedTx, err)
	default:
		return schema.Failed, fmt.Errorf("failed to insert player %d: %w", player.ID, err)
	}
}

// insert runs the INSERT inside a transaction that is committed immediately
// or rolled back on any error.
func (s *PlayerStoreImpl) insert(ctx context.Context, player schema.Player) error {
	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.NamedExecContext(ctx, s.insertQuery, player); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// EnsureTable creates the table if it does not exist.
func (s *PlayerStoreImpl) EnsureTable(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	if _, err := s.conn.ExecContext(ctx, getCreateTableQuery(s.table, s.backend)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}
	return nil
}

// Status reports connectivity and row counts for the table.
func (s *PlayerStoreImpl) Status(ctx context.Context) (schema.TableStatus, error) {
	status := schema.TableStatus{
		Backend:   string(s.backend),
		Table:     s.table,
		Connected: s.conn != nil,
	}
	if s.conn == nil {
		return status, nil
	}

	var tables int
	if err := s.conn.GetContext(ctx, &tables, s.conn.Rebind(getTableExistsQuery(s.backend)), s.table); err != nil {
		return status, fmt.Errorf("failed to check table %s: %w", s.table, err)
	}
	status.TableExists = tables > 0
	if !status.TableExists {
		return status, nil
	}

	quotedTableName := quoteTableName(s.table, s.backend)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := s.conn.GetContext(ctx, &status.TotalRows, countQuery); err != nil {
		return status, fmt.Errorf("failed to get total rows: %w", err)
	}
	teamlessQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE team IS NULL", quotedTableName)
	if err := s.conn.GetContext(ctx, &status.TeamlessRows, teamlessQuery); err != nil {
		return status, fmt.Errorf("failed to get rows without team: %w", err)
	}
	return status, nil
}

// Drop removes the table and every stored player.
func (s *PlayerStoreImpl) Drop(ctx context.Context) error {
	if s.conn == nil {
		return nil
	}
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(s.table, s.backend))
	if _, err := s.conn.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", s.table, err)
	}
	return nil
}

// Close releases the run's connection and the pool behind it.
func (s *PlayerStoreImpl) Close() error {
	if s.db == nil {
		return nil
	}
	connErr := s.conn.Close()
	dbErr := s.db.Close()
	s.conn, s.db = nil, nil
	return errors.Join(connErr, dbErr)
}
