package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	SeedFile string   `json:"seed_file" mapstructure:"seed_file"`
	Database Database `json:"database" mapstructure:"database"`
	Report   Report   `json:"report" mapstructure:"report"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Report struct {
	PurchaseLimit int `json:"purchase_limit" mapstructure:"purchase_limit"`
	TopGenres     int `json:"top_genres" mapstructure:"top_genres"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Report.PurchaseLimit == 0 {
		cfg.Report.PurchaseLimit = 50
	}
	if cfg.Report.TopGenres == 0 {
		cfg.Report.TopGenres = 5
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"pgx", "postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Report.PurchaseLimit < 0 {
		return fmt.Errorf("report.purchase_limit cannot be negative")
	}
	if c.Report.TopGenres < 0 {
		return fmt.Errorf("report.top_genres cannot be negative")
	}

	return nil
}
