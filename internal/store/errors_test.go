package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"pg undefined table", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, ErrTableMissing},
		{"pg unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, ErrDuplicatePlayer},
		{"pg aborted tx", &pgconn.PgError{Code: pgerrcode.InFailedSQLTransaction}, ErrAbortedTx},
		{"pg other", &pgconn.PgError{Code: pgerrcode.DiskFull}, nil},
		{"mysql no such table", &mysql.MySQLError{Number: 1146}, ErrTableMissing},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062}, ErrDuplicatePlayer},
		{"mysql other", &mysql.MySQLError{Number: 1045}, nil},
		{"wrapped pg", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), ErrDuplicatePlayer},
		{"sqlite message", errors.New("SQL logic error: no such table: draft_combine_stats (1)"), ErrTableMissing},
		{"unknown", errors.New("connection reset"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}
