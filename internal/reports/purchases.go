package reports

import (
	"context"
	"database/sql"
	"time"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
)

type Purchase struct {
	Customer    string
	Track       string
	Album       sql.NullString
	Artist      sql.NullString
	UnitPrice   float64
	Quantity    int64
	InvoiceDate time.Time
}

func buildPurchases(d common.Dialect, limit int) (string, []interface{}, error) {
	customerName := d.Concat("c.first_name", "' '", "c.last_name")

	return d.Builder().
		Select(
			customerName+" AS customer_name",
			"t.name AS track_name",
			"al.title AS album_title",
			"ar.name AS artist_name",
			"ii.unit_price",
			"ii.quantity",
			"i.invoice_date",
		).
		From("customers c").
		Join("invoices i ON i.customer_id = c.customer_id").
		Join("invoice_items ii ON ii.invoice_id = i.invoice_id").
		Join("tracks t ON t.track_id = ii.track_id").
		LeftJoin("albums al ON al.album_id = t.album_id").
		LeftJoin("artists ar ON ar.artist_id = al.artist_id").
		OrderBy(
			"i.invoice_date DESC",
			"customer_name",
			"artist_name",
			"album_title",
			"track_name",
		).
		Limit(uint64(limit)).
		ToSql()
}

// Purchases lists individual invoice lines, newest invoices first, capped at
// the configured limit. Tracks without an album or artist still appear with
// those fields null.
func (r *Reporter) Purchases(ctx context.Context) ([]Purchase, error) {
	query, args, err := buildPurchases(r.adapter.Dialect(), r.purchaseLimit)
	if err != nil {
		return nil, err
	}

	rows, err := r.queryRows(ctx, ReportPurchases, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var purchases []Purchase
	for rows.Next() {
		var p Purchase
		if err := rows.Scan(&p.Customer, &p.Track, &p.Album, &p.Artist, &p.UnitPrice, &p.Quantity, &p.InvoiceDate); err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
