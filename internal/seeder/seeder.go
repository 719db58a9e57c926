// Package seeder inserts music video rows by looking tracks up by name, so
// the seed list never hardcodes track identifiers.
package seeder

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database"
	"github.com/Lumos-Labs-HQ/jukebox/internal/dberr"
	"github.com/Lumos-Labs-HQ/jukebox/internal/schema"
	"github.com/Masterminds/squirrel"
	"github.com/fatih/color"
)

type Seeder struct {
	adapter database.Adapter
	quiet   bool
}

func New(adapter database.Adapter) *Seeder {
	return &Seeder{adapter: adapter}
}

// Quiet suppresses the per-entry progress output; tests use this.
func (s *Seeder) Quiet() *Seeder {
	s.quiet = true
	return s
}

// Seed inserts one video row per track whose name matches an entry. A name
// matching several tracks gets a row for each; a name matching nothing
// inserts zero rows and is not an error. Re-seeding an already seeded track
// fails with a unique constraint violation and aborts the sequence.
func (s *Seeder) Seed(ctx context.Context, entries []Entry) (int64, error) {
	qb := s.adapter.Dialect().Builder()

	var total int64
	for _, entry := range entries {
		lookup := squirrel.Select("track_id").
			Column(squirrel.Expr("?", entry.Director)).
			From("tracks").
			Where(squirrel.Eq{"name": entry.Track})

		query, args, err := qb.Insert(schema.TableName).
			Columns("track_id", "director").
			Select(lookup).
			ToSql()
		if err != nil {
			return total, fmt.Errorf("failed to build insert for %q: %w", entry.Track, err)
		}

		result, err := s.adapter.Exec(ctx, query, args...)
		if err != nil {
			return total, dberr.Classify(fmt.Errorf("failed to seed video for %q: %w", entry.Track, err))
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("failed to read affected rows for %q: %w", entry.Track, err)
		}
		total += affected

		if !s.quiet {
			if affected == 0 {
				color.Yellow("  ⚠️  %s: no matching track, skipped", entry.Track)
			} else {
				color.Green("  ✅ %s — %s (%d row(s))", entry.Track, entry.Director, affected)
			}
		}
	}

	return total, nil
}
