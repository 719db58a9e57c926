package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/jukebox/internal/config"
	"github.com/Lumos-Labs-HQ/jukebox/internal/database"
)

// openAdapter loads the config, connects the provider adapter, and pings it.
// The caller owns Close.
func openAdapter(ctx context.Context) (database.Adapter, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, nil, err
	}

	adapter := database.NewAdapter(cfg.Database.Provider)
	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return adapter, cfg, nil
}
