package reports

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
)

type HiddenTrack struct {
	ID           int64
	Name         string
	Genre        sql.NullString
	Milliseconds int64
}

// Ties at the top-N boundary are broken by whatever order the engine gives
// equal totals; the ranking is deliberately not made deterministic.
func buildHiddenGenres(d common.Dialect, topN int) (string, []interface{}, error) {
	query := fmt.Sprintf(`WITH genre_airtime AS (
    SELECT genre_id, SUM(milliseconds) AS total_ms
    FROM tracks
    WHERE genre_id IS NOT NULL
    GROUP BY genre_id
),
heavy_rotation AS (
    SELECT genre_id
    FROM genre_airtime
    ORDER BY total_ms DESC
    LIMIT %d
)
SELECT t.track_id, t.name AS track_name, g.name AS genre_name, t.milliseconds
FROM tracks t
LEFT JOIN genres g ON g.genre_id = t.genre_id
WHERE t.genre_id IS NULL
   OR t.genre_id NOT IN (SELECT genre_id FROM heavy_rotation)
ORDER BY genre_name, track_name`, topN)

	return query, nil, nil
}

// HiddenGenreTracks lists every track outside the top-N genres by total
// duration. Tracks with no genre are always included.
func (r *Reporter) HiddenGenreTracks(ctx context.Context) ([]HiddenTrack, error) {
	query, args, err := buildHiddenGenres(r.adapter.Dialect(), r.topGenres)
	if err != nil {
		return nil, err
	}

	rows, err := r.queryRows(ctx, ReportHiddenGenres, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tracks []HiddenTrack
	for rows.Next() {
		var t HiddenTrack
		if err := rows.Scan(&t.ID, &t.Name, &t.Genre, &t.Milliseconds); err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}
