// Package config loads application-level settings: the HTTP listen
// address, the database location, and the auth service endpoint.
// Model-provider settings live with the llm package.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rgoyal/studyhall/internal/store"
)

// Config holds application settings.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database file path.
	DBPath string

	// AuthURL is the auth service admin endpoint.
	AuthURL string

	// AuthServiceKey authenticates admin calls to the auth service.
	AuthServiceKey string

	// ActivityFeedLimit caps how many feed entries the dashboard shows.
	ActivityFeedLimit int
}

// Load reads configuration from a .env file (if present) and the
// environment, with env winning. All settings use the STUDYHALL_
// prefix.
func Load() (*Config, error) {
	// .env is a local-development convenience; absence is fine.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("STUDYHALL")
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("ACTIVITY_FEED_LIMIT", 20)

	dbPath := v.GetString("DB")
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve db path: %w", err)
		}
		dbPath = p
	}

	return &Config{
		Addr:              v.GetString("ADDR"),
		DBPath:            dbPath,
		AuthURL:           v.GetString("AUTH_URL"),
		AuthServiceKey:    v.GetString("AUTH_SERVICE_KEY"),
		ActivityFeedLimit: v.GetInt("ACTIVITY_FEED_LIMIT"),
	}, nil
}
