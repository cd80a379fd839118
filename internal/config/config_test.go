package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "puzzler.yaml", `
log_level: debug
search:
  max_expansions: 5000
  timeout: 2s
play:
  interval: 10ms
store:
  driver: redis
  redis:
    addr: redis:6379
    db: "2"
    ttl: 1h
metrics:
  enabled: true
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.Search.MaxExpansions)
	assert.Equal(t, 2*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 10*time.Millisecond, cfg.Play.Interval)
	assert.Equal(t, DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB, "weak typing turns the quoted db into an int")
	assert.Equal(t, time.Hour, cfg.Store.Redis.TTL)
	assert.True(t, cfg.Metrics.Enabled)

	// Untouched keys keep their defaults
	assert.Equal(t, "puzzler:solution:", cfg.Store.Redis.Prefix)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "puzzler.json", `{"http": {"addr": ":9090"}, "store": {"driver": "none"}}`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, DriverNone, cfg.Store.Driver)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := write(t, "puzzler.yaml", "search:\n  max_expansion: 10\n")
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PUZZLER_LOG_LEVEL", "warn")
	t.Setenv("PUZZLER_SEARCH_MAX_EXPANSIONS", "42")
	t.Setenv("PUZZLER_STORE_REDIS_ADDR", "cache:6379")

	path := write(t, "puzzler.yaml", "search:\n  max_expansions: 10\n")
	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 42, cfg.Search.MaxExpansions)
	assert.Equal(t, "cache:6379", cfg.Store.Redis.Addr)
}

func TestFromEnv(t *testing.T) {
	got := fromEnv([]string{
		"HOME=/root",
		"PUZZLER_LOG_FORMAT=json",
		"PUZZLER_PLAY_INTERVAL=1s",
		"PUZZLER_STORE_REDIS_TTL=5m",
		"PUZZLER_STORE_DRIVER=redis",
	})
	assert.Equal(t, map[string]any{
		"log_format": "json",
		"play":       map[string]any{"interval": "1s"},
		"store": map[string]any{
			"driver": "redis",
			"redis":  map[string]any{"ttl": "5m"},
		},
	}, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"log format", func(c *Config) { c.LogFormat = "xml" }},
		{"negative expansions", func(c *Config) { c.Search.MaxExpansions = -1 }},
		{"negative timeout", func(c *Config) { c.Search.Timeout = -time.Second }},
		{"negative interval", func(c *Config) { c.Play.Interval = -time.Second }},
		{"unknown driver", func(c *Config) { c.Store.Driver = "etcd" }},
		{"file without dir", func(c *Config) { c.Store.Driver = DriverFile; c.Store.Dir = "" }},
		{"negative lock ttl", func(c *Config) { c.Store.LockTTL = -time.Second }},
		{"redis without addr", func(c *Config) { c.Store.Driver = DriverRedis; c.Store.Redis.Addr = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}
