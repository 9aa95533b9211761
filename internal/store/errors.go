package store

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Driver-independent causes of a failed insert.
var (
	ErrTableMissing    = errors.New("table does not exist")
	ErrDuplicatePlayer = errors.New("player already exists")
	ErrAbortedTx       = errors.New("transaction is aborted")
)

const (
	mysqlErrNoSuchTable  = 1146
	mysqlErrDuplicateKey = 1062
)

// classify maps a driver error onto one of the sentinels above, or returns
// nil when the error is not one the store knows how to handle.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable:
			return ErrTableMissing
		case pgerrcode.UniqueViolation:
			return ErrDuplicatePlayer
		case pgerrcode.InFailedSQLTransaction:
			return ErrAbortedTx
		}
		return nil
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrNoSuchTable:
			return ErrTableMissing
		case mysqlErrDuplicateKey:
			return ErrDuplicatePlayer
		}
		return nil
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return ErrDuplicatePlayer
		}
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE") {
			return ErrDuplicatePlayer
		}
	}

	// SQLite reports a missing table as a generic SQL logic error.
	if strings.Contains(err.Error(), "no such table") {
		return ErrTableMissing
	}
	return nil
}
