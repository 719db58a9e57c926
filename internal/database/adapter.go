package database

import (
	"context"
	"database/sql"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
)

// Adapter is the per-provider database surface the rest of the tool runs on.
// Statements execute sequentially on one connection pool; the caller owns the
// Connect/Close lifecycle.
type Adapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error)
	QueryRows(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)

	CheckTableExists(ctx context.Context, tableName string) (bool, error)
	CheckColumnExists(ctx context.Context, tableName, columnName string) (bool, error)

	Dialect() common.Dialect
}
