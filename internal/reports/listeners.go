package reports

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
)

// LongListenCutoffMs caps the duration universe at 15 minutes. Tracks above
// it are excluded from the analysis entirely, including the mean itself.
const LongListenCutoffMs = 900_000

type Listener struct {
	ID    int64
	Name  string
	Email string
}

func buildLongListens(d common.Dialect) (string, []interface{}, error) {
	customerName := d.Concat("c.first_name", "' '", "c.last_name")

	query := fmt.Sprintf(`WITH eligible AS (
    SELECT track_id, milliseconds
    FROM tracks
    WHERE milliseconds <= %d
),
longer_than_avg AS (
    SELECT track_id
    FROM eligible
    WHERE milliseconds > (SELECT AVG(milliseconds) FROM eligible)
)
SELECT DISTINCT c.customer_id, %s AS customer_name, c.email
FROM customers c
JOIN invoices i ON i.customer_id = c.customer_id
JOIN invoice_items ii ON ii.invoice_id = i.invoice_id
JOIN longer_than_avg l ON l.track_id = ii.track_id
ORDER BY customer_name`, LongListenCutoffMs, customerName)

	return query, nil, nil
}

// LongListenPurchasers returns the distinct customers who bought at least one
// track strictly longer than the average duration of the sub-15-minute
// catalog.
func (r *Reporter) LongListenPurchasers(ctx context.Context) ([]Listener, error) {
	query, args, err := buildLongListens(r.adapter.Dialect())
	if err != nil {
		return nil, err
	}

	rows, err := r.queryRows(ctx, ReportLongListens, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listeners []Listener
	for rows.Next() {
		var l Listener
		if err := rows.Scan(&l.ID, &l.Name, &l.Email); err != nil {
			return nil, err
		}
		listeners = append(listeners, l)
	}
	return listeners, rows.Err()
}
