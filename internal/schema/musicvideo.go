// Package schema owns the music_videos table: the one piece of schema this
// tool adds to an otherwise externally-owned music store database.
package schema

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database"
	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
	"github.com/Lumos-Labs-HQ/jukebox/internal/dberr"
)

const (
	TableName = "music_videos"

	refTable  = "tracks"
	refColumn = "track_id"
)

type Initializer struct {
	adapter database.Adapter
}

func NewInitializer(adapter database.Adapter) *Initializer {
	return &Initializer{adapter: adapter}
}

// Init drops any previous music_videos table and recreates it. The primary
// key on track_id keeps videos 1-to-1 with tracks; deletes and renumbers on
// tracks cascade through the foreign key.
func (i *Initializer) Init(ctx context.Context) error {
	exists, err := i.adapter.CheckTableExists(ctx, refTable)
	if err != nil {
		return fmt.Errorf("failed to check for %s table: %w", refTable, err)
	}
	if !exists {
		return dberr.Schema("referenced table %s does not exist", refTable)
	}

	hasColumn, err := i.adapter.CheckColumnExists(ctx, refTable, refColumn)
	if err != nil {
		return fmt.Errorf("failed to check for %s.%s: %w", refTable, refColumn, err)
	}
	if !hasColumn {
		return dberr.Schema("referenced column %s.%s does not exist", refTable, refColumn)
	}

	if err := i.Drop(ctx); err != nil {
		return err
	}

	if _, err := i.adapter.Exec(ctx, createSQL(i.adapter.Dialect())); err != nil {
		return dberr.Classify(fmt.Errorf("failed to create %s: %w", TableName, err))
	}
	return nil
}

func (i *Initializer) Drop(ctx context.Context) error {
	if _, err := i.adapter.Exec(ctx, "DROP TABLE IF EXISTS "+TableName); err != nil {
		return dberr.Classify(fmt.Errorf("failed to drop %s: %w", TableName, err))
	}
	return nil
}

// RowCount returns the number of seeded videos; used by the status command.
func (i *Initializer) RowCount(ctx context.Context) (int64, error) {
	query, args, err := i.adapter.Dialect().Builder().
		Select("COUNT(*)").From(TableName).ToSql()
	if err != nil {
		return 0, err
	}

	rows, err := i.adapter.QueryRows(ctx, query, args...)
	if err != nil {
		return 0, dberr.Classify(err)
	}
	defer rows.Close()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, err
		}
	}
	return count, rows.Err()
}

func createSQL(d common.Dialect) string {
	directorType := "VARCHAR(120)"
	tableSuffix := ""
	switch d {
	case common.DialectSQLite:
		directorType = "TEXT"
	case common.DialectMySQL:
		tableSuffix = " ENGINE=InnoDB"
	}

	return fmt.Sprintf(`CREATE TABLE %s (
	track_id INTEGER NOT NULL,
	director %s NOT NULL,
	PRIMARY KEY (track_id),
	FOREIGN KEY (track_id) REFERENCES %s (%s)
		ON DELETE CASCADE
		ON UPDATE CASCADE
)%s`, TableName, directorType, refTable, refColumn, tableSuffix)
}
