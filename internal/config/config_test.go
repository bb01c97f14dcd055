package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STUDYHALL_DB", filepath.Join(t.TempDir(), "studyhall.db"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 20, cfg.ActivityFeedLimit)
	assert.Empty(t, cfg.AuthURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv("STUDYHALL_ADDR", ":9090")
	t.Setenv("STUDYHALL_DB", dbPath)
	t.Setenv("STUDYHALL_AUTH_URL", "https://auth.example.edu")
	t.Setenv("STUDYHALL_AUTH_SERVICE_KEY", "svc-key")
	t.Setenv("STUDYHALL_ACTIVITY_FEED_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, dbPath, cfg.DBPath)
	assert.Equal(t, "https://auth.example.edu", cfg.AuthURL)
	assert.Equal(t, "svc-key", cfg.AuthServiceKey)
	assert.Equal(t, 5, cfg.ActivityFeedLimit)
}
