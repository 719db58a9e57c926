package reports

import (
	"context"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
	"github.com/Masterminds/squirrel"
)

// Both cases of each accent are listed explicitly rather than case-folded;
// LIKE is only case-insensitive for ASCII, so the variants stay distinct.
var accentVariants = []string{"á", "Á", "é", "É", "í", "Í", "ó", "Ó", "ú", "Ú"}

type AccentTrack struct {
	ID   int64
	Name string
}

func buildAccents(d common.Dialect) (string, []interface{}, error) {
	match := squirrel.Or{}
	for _, accent := range accentVariants {
		match = append(match, squirrel.Like{"name": "%" + accent + "%"})
	}

	return d.Builder().
		Select("track_id", "name").
		From("tracks").
		Where(match).
		OrderBy("name").
		ToSql()
}

// AccentTracks returns every track whose name contains an accented vowel,
// ordered by name.
func (r *Reporter) AccentTracks(ctx context.Context) ([]AccentTrack, error) {
	query, args, err := buildAccents(r.adapter.Dialect())
	if err != nil {
		return nil, err
	}

	rows, err := r.queryRows(ctx, ReportAccents, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []AccentTrack
	for rows.Next() {
		var t AccentTrack
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
