package common

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Dialect captures the few SQL syntax differences the report queries care
// about: placeholder format and string concatenation.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite"
)

func (d Dialect) PlaceholderFormat() squirrel.PlaceholderFormat {
	if d == DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

// Builder returns a statement builder preconfigured for the dialect's
// placeholder format.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(d.PlaceholderFormat())
}

// Concat renders a string concatenation over the given SQL expressions.
// MySQL has no || operator unless PIPES_AS_CONCAT is set, so it gets CONCAT().
func (d Dialect) Concat(exprs ...string) string {
	if d == DialectMySQL {
		return "CONCAT(" + strings.Join(exprs, ", ") + ")"
	}
	return strings.Join(exprs, " || ")
}
