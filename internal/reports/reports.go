// Package reports holds the read-only analytical queries the tool runs
// against the music store. Each report exists in two forms: a typed method
// for programmatic use and a generic QueryResult for table rendering; both
// run the same SQL.
package reports

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database"
	"github.com/Lumos-Labs-HQ/jukebox/internal/database/common"
	"github.com/Lumos-Labs-HQ/jukebox/internal/dberr"
)

// Report names accepted by the report command.
const (
	ReportAccents      = "accents"
	ReportPurchases    = "purchases"
	ReportRevenue      = "revenue"
	ReportLongListens  = "long-listens"
	ReportHiddenGenres = "hidden-genres"
)

// Names lists the reports in their canonical execution order.
func Names() []string {
	return []string{
		ReportAccents,
		ReportPurchases,
		ReportRevenue,
		ReportLongListens,
		ReportHiddenGenres,
	}
}

type Reporter struct {
	adapter       database.Adapter
	purchaseLimit int
	topGenres     int
}

func New(adapter database.Adapter, purchaseLimit, topGenres int) *Reporter {
	return &Reporter{
		adapter:       adapter,
		purchaseLimit: purchaseLimit,
		topGenres:     topGenres,
	}
}

// Result runs the named report and returns its raw result set for rendering.
func (r *Reporter) Result(ctx context.Context, name string) (*common.QueryResult, error) {
	query, args, err := r.build(name)
	if err != nil {
		return nil, err
	}

	result, err := r.adapter.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Classify(fmt.Errorf("report %s: %w", name, err))
	}
	return result, nil
}

func (r *Reporter) build(name string) (string, []interface{}, error) {
	d := r.adapter.Dialect()
	switch name {
	case ReportAccents:
		return buildAccents(d)
	case ReportPurchases:
		return buildPurchases(d, r.purchaseLimit)
	case ReportRevenue:
		return buildRevenue(d)
	case ReportLongListens:
		return buildLongListens(d)
	case ReportHiddenGenres:
		return buildHiddenGenres(d, r.topGenres)
	default:
		return "", nil, fmt.Errorf("unknown report: %s", name)
	}
}

func (r *Reporter) queryRows(ctx context.Context, name, query string, args []interface{}) (*sql.Rows, error) {
	rows, err := r.adapter.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, dberr.Classify(fmt.Errorf("report %s: %w", name, err))
	}
	return rows, nil
}
