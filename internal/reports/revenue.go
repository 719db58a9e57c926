package reports

import (
	"context"
	"database/sql"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
)

type GenreRevenue struct {
	Genre     sql.NullString
	Revenue   float64
	LineItems int64
	Units     int64
}

// Grouping starts from tracks, not invoice lines, so genres whose tracks
// never sold still report 0.00 and tracks without a genre form their own
// null-labeled group.
func buildRevenue(d common.Dialect) (string, []interface{}, error) {
	return d.Builder().
		Select(
			"g.name AS genre_name",
			"ROUND(COALESCE(SUM(ii.unit_price * ii.quantity), 0), 2) AS revenue",
			"COUNT(ii.track_id) AS line_items",
			"COALESCE(SUM(ii.quantity), 0) AS units",
		).
		From("tracks t").
		LeftJoin("genres g ON g.genre_id = t.genre_id").
		LeftJoin("invoice_items ii ON ii.track_id = t.track_id").
		GroupBy("g.genre_id", "g.name").
		OrderBy("revenue DESC").
		ToSql()
}

// RevenueByGenre totals unit_price × quantity per genre across all invoice
// lines, highest revenue first.
func (r *Reporter) RevenueByGenre(ctx context.Context) ([]GenreRevenue, error) {
	query, args, err := buildRevenue(r.adapter.Dialect())
	if err != nil {
		return nil, err
	}

	rows, err := r.queryRows(ctx, ReportRevenue, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenues []GenreRevenue
	for rows.Next() {
		var g GenreRevenue
		if err := rows.Scan(&g.Genre, &g.Revenue, &g.LineItems, &g.Units); err != nil {
			return nil, err
		}
		revenues = append(revenues, g)
	}
	return revenues, rows.Err()
}
