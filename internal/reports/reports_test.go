package reports

import (
	"context"
	"math"
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database"
)

func newTestAdapter(t *testing.T) database.Adapter {
	t.Helper()

	adapter := database.NewAdapter("sqlite")
	url := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	if err := adapter.Connect(context.Background(), url); err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

var storeSchema = []string{
	`CREATE TABLE artists (
		artist_id INTEGER NOT NULL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE albums (
		album_id INTEGER NOT NULL PRIMARY KEY,
		title TEXT NOT NULL,
		artist_id INTEGER REFERENCES artists (artist_id)
	)`,
	`CREATE TABLE genres (
		genre_id INTEGER NOT NULL PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE tracks (
		track_id INTEGER NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		milliseconds INTEGER NOT NULL,
		genre_id INTEGER REFERENCES genres (genre_id),
		album_id INTEGER REFERENCES albums (album_id)
	)`,
	`CREATE TABLE customers (
		customer_id INTEGER NOT NULL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL
	)`,
	`CREATE TABLE invoices (
		invoice_id INTEGER NOT NULL PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers (customer_id),
		invoice_date DATETIME NOT NULL
	)`,
	`CREATE TABLE invoice_items (
		invoice_line_id INTEGER NOT NULL PRIMARY KEY,
		invoice_id INTEGER NOT NULL REFERENCES invoices (invoice_id),
		track_id INTEGER NOT NULL REFERENCES tracks (track_id),
		unit_price NUMERIC(10,2) NOT NULL,
		quantity INTEGER NOT NULL
	)`,
}

// A miniature store: six genres so a top-5 ranking excludes one, a track
// with no genre and no album, an over-15-minute track, and three customers
// with different buying habits.
var storeData = []string{
	`INSERT INTO artists VALUES (1, 'Santana'), (2, 'Miles Davis')`,
	`INSERT INTO albums VALUES (1, 'Supernatural', 1), (2, 'Kind of Blue', 2)`,
	`INSERT INTO genres VALUES (1, 'Rock'), (2, 'Jazz'), (3, 'Latin'), (4, 'Metal'), (5, 'Blues'), (6, 'Ambient')`,
	`INSERT INTO tracks VALUES
		(1, 'Óye Como Va', 100, 3, 1),
		(2, 'Hello', 200, 1, NULL),
		(3, 'So What', 2000, 2, 2),
		(4, 'Drone', 900001, 6, NULL),
		(5, 'Untitled', 300, NULL, NULL),
		(6, 'Iron Hymn', 500000, 4, NULL),
		(7, 'Delta Mood', 400000, 5, NULL),
		(8, 'Breeze', 50, 6, NULL)`,
	`INSERT INTO customers VALUES
		(1, 'Ana', 'García', 'ana@example.com'),
		(2, 'Bob', 'Marsh', 'bob@example.com'),
		(3, 'Cara', 'Lee', 'cara@example.com')`,
	`INSERT INTO invoices VALUES
		(1, 1, '2024-03-01 10:00:00'),
		(2, 2, '2024-02-01 10:00:00'),
		(3, 3, '2024-01-05 10:00:00'),
		(4, 3, '2024-01-20 10:00:00')`,
	`INSERT INTO invoice_items VALUES
		(1, 1, 6, 0.99, 1),
		(2, 2, 4, 1.99, 2),
		(3, 2, 1, 0.99, 1),
		(4, 3, 7, 0.99, 1),
		(5, 4, 7, 0.99, 3),
		(6, 1, 5, 1.29, 1)`,
}

func newStoreReporter(t *testing.T) *Reporter {
	t.Helper()
	ctx := context.Background()
	adapter := newTestAdapter(t)

	for _, stmt := range append(append([]string{}, storeSchema...), storeData...) {
		if _, err := adapter.Exec(ctx, stmt); err != nil {
			t.Fatalf("Failed to load fixture: %v\n%s", err, stmt)
		}
	}
	return New(adapter, 50, 5)
}

func TestAccentTracks(t *testing.T) {
	reporter := newStoreReporter(t)

	tracks, err := reporter.AccentTracks(context.Background())
	if err != nil {
		t.Fatalf("Failed to run accents report: %v", err)
	}

	if len(tracks) != 1 {
		t.Fatalf("Expected exactly one accented track, got %d: %+v", len(tracks), tracks)
	}
	if tracks[0].Name != "Óye Como Va" {
		t.Errorf("Expected 'Óye Como Va', got '%s'", tracks[0].Name)
	}
}

func TestPurchasesOrderAndJoins(t *testing.T) {
	reporter := newStoreReporter(t)

	purchases, err := reporter.Purchases(context.Background())
	if err != nil {
		t.Fatalf("Failed to run purchases report: %v", err)
	}

	if len(purchases) == 0 || len(purchases) > 50 {
		t.Fatalf("Expected between 1 and 50 rows, got %d", len(purchases))
	}
	if len(purchases) != 6 {
		t.Errorf("Expected 6 invoice lines, got %d", len(purchases))
	}

	for i := 1; i < len(purchases); i++ {
		if purchases[i-1].InvoiceDate.Before(purchases[i].InvoiceDate) {
			t.Errorf("Expected invoice dates in descending order, got %v before %v",
				purchases[i-1].InvoiceDate, purchases[i].InvoiceDate)
		}
	}

	// Track 5 has no album and no artist; the row must still be present
	// with both fields null.
	found := false
	for _, p := range purchases {
		if p.Track == "Untitled" {
			found = true
			if p.Album.Valid || p.Artist.Valid {
				t.Errorf("Expected null album/artist for 'Untitled', got %+v", p)
			}
		}
	}
	if !found {
		t.Error("Expected the album-less track to appear in the purchase report")
	}
}

func TestPurchasesHonorsLimit(t *testing.T) {
	reporter := newStoreReporter(t)
	reporter.purchaseLimit = 2

	purchases, err := reporter.Purchases(context.Background())
	if err != nil {
		t.Fatalf("Failed to run purchases report: %v", err)
	}
	if len(purchases) != 2 {
		t.Errorf("Expected the limit to cap the result at 2 rows, got %d", len(purchases))
	}
}

func TestRevenueByGenre(t *testing.T) {
	reporter := newStoreReporter(t)

	revenues, err := reporter.RevenueByGenre(context.Background())
	if err != nil {
		t.Fatalf("Failed to run revenue report: %v", err)
	}

	// Sum of all revenue must equal the sum of unit_price × quantity over
	// every invoice line: 0.99 + 3.98 + 0.99 + 0.99 + 2.97 + 1.29 = 11.21.
	var total float64
	var sawNullGenre, sawUnsoldGenre bool
	for _, r := range revenues {
		total += r.Revenue
		if !r.Genre.Valid {
			sawNullGenre = true
			if math.Abs(r.Revenue-1.29) > 0.001 {
				t.Errorf("Expected 1.29 revenue for the null genre group, got %.2f", r.Revenue)
			}
		}
		if r.Genre.Valid && r.Genre.String == "Jazz" {
			sawUnsoldGenre = true
			if r.Revenue != 0 || r.LineItems != 0 || r.Units != 0 {
				t.Errorf("Expected zero totals for unsold genre Jazz, got %+v", r)
			}
		}
	}

	if math.Abs(total-11.21) > 0.001 {
		t.Errorf("Expected total revenue 11.21, got %.2f", total)
	}
	if !sawNullGenre {
		t.Error("Expected a row for tracks with no genre")
	}
	if !sawUnsoldGenre {
		t.Error("Expected a zero-revenue row for a genre whose tracks never sold")
	}

	for i := 1; i < len(revenues); i++ {
		if revenues[i-1].Revenue < revenues[i].Revenue {
			t.Errorf("Expected revenue in descending order, got %.2f before %.2f",
				revenues[i-1].Revenue, revenues[i].Revenue)
		}
	}
}

func TestLongListenPurchasers(t *testing.T) {
	reporter := newStoreReporter(t)

	listeners, err := reporter.LongListenPurchasers(context.Background())
	if err != nil {
		t.Fatalf("Failed to run long-listens report: %v", err)
	}

	// Eligible durations: 100, 200, 2000, 300, 500000, 400000, 50 (the
	// 900001ms track is out). Mean ≈ 128950, so only Iron Hymn and Delta
	// Mood qualify; Ana bought the former, Cara the latter (twice). Bob
	// only bought the over-cutoff track and the 100ms track.
	if len(listeners) != 2 {
		t.Fatalf("Expected 2 purchasers, got %d: %+v", len(listeners), listeners)
	}
	if listeners[0].Name != "Ana García" || listeners[1].Name != "Cara Lee" {
		t.Errorf("Unexpected purchasers (should be name-ordered, distinct): %+v", listeners)
	}
}

func TestLongListenCutoffExcludedFromMean(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t)

	for _, stmt := range storeSchema {
		if _, err := adapter.Exec(ctx, stmt); err != nil {
			t.Fatalf("Failed to load schema: %v", err)
		}
	}

	// Durations 100, 200, 2000 and an over-cutoff 900001. The mean must be
	// computed over the first three only (≈766.67), making the 2000ms track
	// the single qualifier. If the 900001ms track leaked into the mean
	// (≈225575), nothing would qualify and the report would be empty.
	fixture := []string{
		`INSERT INTO tracks (track_id, name, milliseconds) VALUES
			(1, 'A', 100), (2, 'B', 200), (3, 'C', 2000), (4, 'D', 900001)`,
		`INSERT INTO customers VALUES (1, 'Dana', 'Hill', 'dana@example.com'),
			(2, 'Eli', 'Stone', 'eli@example.com')`,
		`INSERT INTO invoices VALUES (1, 1, '2024-01-01 00:00:00'), (2, 2, '2024-01-02 00:00:00')`,
		`INSERT INTO invoice_items VALUES (1, 1, 3, 0.99, 1), (2, 2, 4, 0.99, 1)`,
	}
	for _, stmt := range fixture {
		if _, err := adapter.Exec(ctx, stmt); err != nil {
			t.Fatalf("Failed to load fixture: %v", err)
		}
	}

	listeners, err := New(adapter, 50, 5).LongListenPurchasers(ctx)
	if err != nil {
		t.Fatalf("Failed to run long-listens report: %v", err)
	}

	if len(listeners) != 1 {
		t.Fatalf("Expected exactly one purchaser, got %d: %+v", len(listeners), listeners)
	}
	if listeners[0].Name != "Dana Hill" {
		t.Errorf("Expected 'Dana Hill', got '%s'", listeners[0].Name)
	}
}

func TestHiddenGenreTracks(t *testing.T) {
	reporter := newStoreReporter(t)

	tracks, err := reporter.HiddenGenreTracks(context.Background())
	if err != nil {
		t.Fatalf("Failed to run hidden-genres report: %v", err)
	}

	// Genre airtime: Ambient 900051, Metal 500000, Blues 400000, Jazz 2000,
	// Rock 200, Latin 100. Top 5 excludes Latin, so the report holds the
	// Latin track plus the genre-less one.
	if len(tracks) != 2 {
		t.Fatalf("Expected 2 tracks outside the top genres, got %d: %+v", len(tracks), tracks)
	}

	var sawNullGenre bool
	for _, track := range tracks {
		if !track.Genre.Valid {
			sawNullGenre = true
		}
		if track.Genre.Valid && track.Genre.String == "Ambient" {
			t.Errorf("Expected the heaviest genre to be excluded, got track %+v", track)
		}
	}
	if !sawNullGenre {
		t.Error("Expected tracks with no genre to always be included")
	}
}

func TestResultMatchesTypedReports(t *testing.T) {
	reporter := newStoreReporter(t)
	ctx := context.Background()

	for _, name := range Names() {
		result, err := reporter.Result(ctx, name)
		if err != nil {
			t.Fatalf("Failed to run report %s: %v", name, err)
		}
		if len(result.Columns) == 0 {
			t.Errorf("Report %s returned no columns", name)
		}
	}

	if _, err := reporter.Result(ctx, "nope"); err == nil {
		t.Error("Expected unknown report name to fail")
	}
}
