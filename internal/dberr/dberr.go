// Package dberr maps driver-specific failures onto the small error taxonomy
// the statement sequence cares about: schema errors (missing table/column),
// unique constraint violations, referential integrity violations, and
// everything else as a generic query error.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

type Kind int

const (
	KindQuery Kind = iota
	KindSchema
	KindUniqueViolation
	KindForeignKeyViolation
)

func (k Kind) String() string {
	switch k {
	case KindSchema:
		return "schema error"
	case KindUniqueViolation:
		return "unique constraint violation"
	case KindForeignKeyViolation:
		return "referential integrity violation"
	default:
		return "query error"
	}
}

// Error wraps a driver error with its classified kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify wraps err with the kind derived from the driver's error code.
// A nil error stays nil; unrecognized errors come back as KindQuery.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kindOf(err), Err: err}
}

func kindOf(err error) Kind {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return kindOfSQLState(pgxErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return kindOfSQLState(string(pqErr.Code))
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062: // ER_DUP_ENTRY
			return KindUniqueViolation
		case 1451, 1452: // ER_ROW_IS_REFERENCED_2, ER_NO_REFERENCED_ROW_2
			return KindForeignKeyViolation
		case 1146, 1054: // ER_NO_SUCH_TABLE, ER_BAD_FIELD_ERROR
			return KindSchema
		}
		return KindQuery
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return KindUniqueViolation
		case sqlite3.ErrConstraintForeignKey:
			return KindForeignKeyViolation
		}
		if liteErr.Code == sqlite3.ErrError {
			// SQLite reports missing objects as a generic error with a
			// recognizable message.
			msg := liteErr.Error()
			if strings.Contains(msg, "no such table") || strings.Contains(msg, "no such column") {
				return KindSchema
			}
		}
		return KindQuery
	}

	return KindQuery
}

func kindOfSQLState(code string) Kind {
	switch code {
	case "23505":
		return KindUniqueViolation
	case "23503":
		return KindForeignKeyViolation
	case "42P01", "42703", "3F000": // undefined table, undefined column, invalid schema
		return KindSchema
	}
	return KindQuery
}

// Schema builds a schema error directly, for failures detected by precheck
// rather than reported by the engine.
func Schema(format string, args ...interface{}) error {
	return &Error{Kind: KindSchema, Err: fmt.Errorf(format, args...)}
}

func IsSchema(err error) bool { return isKind(err, KindSchema) }

func IsUniqueViolation(err error) bool { return isKind(err, KindUniqueViolation) }

func IsForeignKeyViolation(err error) bool { return isKind(err, KindForeignKeyViolation) }

func isKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
