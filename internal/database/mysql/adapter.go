package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
)

type Adapter struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Connect accepts either a go-sql-driver DSN or a mysql:// URL, which gets
// rewritten to the user:pass@tcp(host:port)/db form the driver expects.
func (m *Adapter) Connect(ctx context.Context, url string) error {
	dsn := url
	if strings.HasPrefix(url, "mysql://") {
		trimmed := strings.TrimPrefix(url, "mysql://")
		if at := strings.Index(trimmed, "@"); at > 0 {
			credentials := trimmed[:at]
			remainder := trimmed[at+1:]
			if slash := strings.Index(remainder, "/"); slash > 0 {
				dsn = fmt.Sprintf("%s@tcp(%s)/%s", credentials, remainder[:slash], remainder[slash+1:])
			}
		}
	}
	if !strings.Contains(dsn, "parseTime") {
		if strings.Contains(dsn, "?") {
			dsn += "&parseTime=true"
		} else {
			dsn += "?parseTime=true"
		}
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open mysql connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	return nil
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return m.db.ExecContext(ctx, query, args...)
}

func (m *Adapter) QueryRows(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return m.db.QueryContext(ctx, query, args...)
}

func (m *Adapter) Query(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()
	return common.ScanRows(rows)
}

func (m *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query, args, err := m.qb.Select("COUNT(*) > 0").
		From("information_schema.tables").
		Where("table_schema = DATABASE()").
		Where(squirrel.Eq{"table_name": tableName}).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = m.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	return exists, err
}

func (m *Adapter) CheckColumnExists(ctx context.Context, tableName, columnName string) (bool, error) {
	query, args, err := m.qb.Select("COUNT(*) > 0").
		From("information_schema.columns").
		Where("table_schema = DATABASE()").
		Where(squirrel.Eq{"table_name": tableName, "column_name": columnName}).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = m.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	return exists, err
}

func (m *Adapter) Dialect() common.Dialect {
	return common.DialectMySQL
}
