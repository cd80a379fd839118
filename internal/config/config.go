// Package config loads puzzler settings from a YAML or JSON file, then applies
// PUZZLER_* environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/puzzler/internal/logging"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up when no --config flag is given.
const DefaultPath = "puzzler.yaml"

// Store drivers.
const (
	DriverNone   = "none"
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	Search  SearchConfig  `mapstructure:"search"`
	Play    PlayConfig    `mapstructure:"play"`
	Store   StoreConfig   `mapstructure:"store"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type SearchConfig struct {
	// MaxExpansions bounds each search. Zero is unbounded.
	MaxExpansions int           `mapstructure:"max_expansions"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type PlayConfig struct {
	// Interval is the pause between rendered frames.
	Interval time.Duration `mapstructure:"interval"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	Dir    string `mapstructure:"dir"`
	// LockTTL bounds how long one solve may hold the per-state lock.
	LockTTL time.Duration `mapstructure:"lock_ttl"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Search: SearchConfig{
			MaxExpansions: 2_000_000,
			Timeout:       time.Minute,
		},
		Play: PlayConfig{
			Interval: 300 * time.Millisecond,
		},
		Store: StoreConfig{
			Driver:  DriverMemory,
			Dir:     filepath.Join(".puzzler", "solutions"),
			LockTTL: 2 * time.Minute,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "puzzler:solution:",
			},
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error unless
// required is set. Environment overrides are applied last, then Validate.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	raw, err := readFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || required {
			return cfg, err
		}
	}
	if raw != nil {
		if err := decode(raw, &cfg, true); err != nil {
			return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}

	if err := decode(fromEnv(os.Environ()), &cfg, false); err != nil {
		return cfg, fmt.Errorf("failed to decode environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// readFile parses YAML (default) or JSON (by extension) into a generic map.
func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return raw, nil
}

// decode overlays raw onto cfg. Weak typing lets "5000" fill an int and "2s" a Duration.
// Strict mode rejects keys that match no field.
func decode(raw map[string]any, cfg *Config, strict bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// fromEnv turns PUZZLER_SEARCH_MAX_EXPANSIONS=10 into {"search": {"max_expansions": "10"}}.
// Only known sections are split; the rest of the name is the field.
func fromEnv(environ []string) map[string]any {
	sections := map[string]bool{"search": true, "play": true, "store": true, "http": true, "metrics": true}

	out := map[string]any{}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "PUZZLER_") {
			continue
		}
		path := strings.ToLower(strings.TrimPrefix(name, "PUZZLER_"))

		section, field, nested := strings.Cut(path, "_")
		if !nested || !sections[section] {
			out[path] = value
			continue
		}

		m, _ := out[section].(map[string]any)
		if m == nil {
			m = map[string]any{}
			out[section] = m
		}
		if section == "store" && strings.HasPrefix(field, "redis_") {
			r, _ := m["redis"].(map[string]any)
			if r == nil {
				r = map[string]any{}
				m["redis"] = r
			}
			r[strings.TrimPrefix(field, "redis_")] = value
			continue
		}
		m[field] = value
	}
	return out
}

// Validate rejects settings no component could honor.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions must be >= 0", ErrInvalidConfig)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout must be >= 0", ErrInvalidConfig)
	}
	if c.Play.Interval < 0 {
		return fmt.Errorf("%w: play.interval must be >= 0", ErrInvalidConfig)
	}
	if c.Store.LockTTL < 0 {
		return fmt.Errorf("%w: store.lock_ttl must be >= 0", ErrInvalidConfig)
	}
	switch c.Store.Driver {
	case DriverNone, DriverMemory:
	case DriverFile:
		if c.Store.Dir == "" {
			return fmt.Errorf("%w: store.dir is required for the file driver", ErrInvalidConfig)
		}
	case DriverRedis:
		if c.Store.Redis.Addr == "" {
			return fmt.Errorf("%w: store.redis.addr is required for the redis driver", ErrInvalidConfig)
		}
		if c.Store.Redis.TTL < 0 {
			return fmt.Errorf("%w: store.redis.ttl must be >= 0", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store.driver %q", ErrInvalidConfig, c.Store.Driver)
	}
	return nil
}
