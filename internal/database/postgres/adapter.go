package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
	"github.com/Masterminds/squirrel"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Adapter runs against PostgreSQL through database/sql. Two registered
// drivers are supported: pgx stdlib ("pgx") and lib/pq ("postgres").
type Adapter struct {
	db         *sql.DB
	driverName string
	qb         squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		driverName: "pgx",
		qb:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// NewPQ selects the lib/pq driver instead of pgx stdlib.
func NewPQ() *Adapter {
	a := New()
	a.driverName = "postgres"
	return a
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	db, err := sql.Open(p.driverName, url)
	if err != nil {
		return fmt.Errorf("failed to open postgres connection: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	p.db = db
	return nil
}

func (p *Adapter) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Adapter) Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return p.db.ExecContext(ctx, query, args...)
}

func (p *Adapter) QueryRows(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return p.db.QueryContext(ctx, query, args...)
}

func (p *Adapter) Query(ctx context.Context, query string, args ...interface{}) (*common.QueryResult, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()
	return common.ScanRows(rows)
}

func (p *Adapter) CheckTableExists(ctx context.Context, tableName string) (bool, error) {
	query, args, err := p.qb.Select("COUNT(*) > 0").
		From("information_schema.tables").
		Where(squirrel.Eq{"table_schema": "public", "table_name": tableName}).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	return exists, err
}

func (p *Adapter) CheckColumnExists(ctx context.Context, tableName, columnName string) (bool, error) {
	query, args, err := p.qb.Select("COUNT(*) > 0").
		From("information_schema.columns").
		Where(squirrel.Eq{"table_schema": "public", "table_name": tableName, "column_name": columnName}).
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = p.db.QueryRowContext(ctx, query, args...).Scan(&exists)
	return exists, err
}

func (p *Adapter) Dialect() common.Dialect {
	return common.DialectPostgres
}
