package schema

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/jukebox/internal/database"
	"github.com/Lumos-Labs-HQ/jukebox/internal/dberr"
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

func createTracksTable(t *testing.T, adapter database.Adapter) {
	t.Helper()

	_, err := adapter.Exec(context.Background(), `CREATE TABLE tracks (
		track_id INTEGER NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		milliseconds INTEGER NOT NULL,
		genre_id INTEGER,
		album_id INTEGER
	)`)
	if err != nil {
		t.Fatalf("Failed to create tracks fixture: %v", err)
	}
}

func TestInitCreatesEmptyTable(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t)
	createTracksTable(t, adapter)

	init := NewInitializer(adapter)
	if err := init.Init(ctx); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}

	exists, err := adapter.CheckTableExists(ctx, TableName)
	if err != nil {
		t.Fatalf("Failed to check table: %v", err)
	}
	if !exists {
		t.Fatal("Expected music_videos table to exist after init")
	}

	count, err := init.RowCount(ctx)
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 rows after init, got %d", count)
	}
}

func TestInitFailsWithoutTracksTable(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t)

	err := NewInitializer(adapter).Init(ctx)
	if err == nil {
		t.Fatal("Expected init to fail without a tracks table, but it succeeded")
	}
	if !dberr.IsSchema(err) {
		t.Errorf("Expected a schema error, got: %v", err)
	}
}

func TestInsertRejectsUnknownTrack(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t)
	createTracksTable(t, adapter)

	if err := NewInitializer(adapter).Init(ctx); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}

	_, err := adapter.Exec(ctx, "INSERT INTO music_videos (track_id, director) VALUES (?, ?)", 999, "Nobody")
	if err == nil {
		t.Fatal("Expected insert referencing a nonexistent track to fail, but it succeeded")
	}
	if !dberr.IsForeignKeyViolation(dberr.Classify(err)) {
		t.Errorf("Expected a foreign key violation, got: %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t)
	createTracksTable(t, adapter)

	init := NewInitializer(adapter)
	if err := init.Init(ctx); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}

	if _, err := adapter.Exec(ctx, "INSERT INTO tracks (track_id, name, milliseconds) VALUES (1, 'Hello', 1000)"); err != nil {
		t.Fatalf("Failed to insert track: %v", err)
	}
	if _, err := adapter.Exec(ctx, "INSERT INTO music_videos (track_id, director) VALUES (1, 'Jane Doe')"); err != nil {
		t.Fatalf("Failed to insert video: %v", err)
	}

	if _, err := adapter.Exec(ctx, "DELETE FROM tracks WHERE track_id = 1"); err != nil {
		t.Fatalf("Failed to delete track: %v", err)
	}

	count, err := init.RowCount(ctx)
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected video to cascade away with its track, found %d row(s)", count)
	}
}

func TestInitIsRerunnable(t *testing.T) {
	ctx := context.Background()
	adapter := newTestAdapter(t)
	createTracksTable(t, adapter)

	init := NewInitializer(adapter)
	if err := init.Init(ctx); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}

	if _, err := adapter.Exec(ctx, "INSERT INTO tracks (track_id, name, milliseconds) VALUES (1, 'Hello', 1000)"); err != nil {
		t.Fatalf("Failed to insert track: %v", err)
	}
	if _, err := adapter.Exec(ctx, "INSERT INTO music_videos (track_id, director) VALUES (1, 'Jane Doe')"); err != nil {
		t.Fatalf("Failed to insert video: %v", err)
	}

	if err := init.Init(ctx); err != nil {
		t.Fatalf("Failed to re-init schema: %v", err)
	}

	count, err := init.RowCount(ctx)
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected re-init to start from an empty table, found %d row(s)", count)
	}
}
