package database

import (
	"github.com/Lumos-Labs-HQ/jukebox/internal/database/mysql"
	"github.com/Lumos-Labs-HQ/jukebox/internal/database/postgres"
	"github.com/Lumos-Labs-HQ/jukebox/internal/database/sqlite"
)

// NewAdapter selects the provider implementation. "pgx" picks the pgx stdlib
// driver, "postgres"/"postgresql" the lib/pq driver; both speak the same
// dialect.
func NewAdapter(provider string) Adapter {
	switch provider {
	case "pgx":
		return postgres.New()
	case "postgresql", "postgres":
		return postgres.NewPQ()
	case "mysql":
		return mysql.New()
	case "sqlite", "sqlite3":
		return sqlite.New()
	default:
		return postgres.New()
	}
}
