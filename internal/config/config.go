// Package config loads the floorplan configuration file.
//
// Configuration is TOML, looked up at an explicit path or at the default
// XDG location (~/.config/floorplan/floorplan.toml). A missing file yields
// the defaults; a malformed file is an error.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/dashu-baba/architect-layout-solver/pkg/errors"
)

// FileName is the configuration file name.
const FileName = "floorplan.toml"

// Cache backend names accepted in [CacheConfig].
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config is the root configuration document.
type Config struct {
	Server ServerConfig `toml:"server"`
	Solver SolverConfig `toml:"solver"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"` // listen address, e.g. ":8080"
}

// SolverConfig configures solve behaviour.
type SolverConfig struct {
	// Deadline bounds a single solve; zero means unbounded.
	Deadline duration `toml:"deadline"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend string `toml:"backend"` // file, redis, or none

	// Redis settings, used when backend = "redis".
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig configures layout persistence for the server.
type StoreConfig struct {
	// MongoURI enables the MongoDB store when non-empty; otherwise the
	// server keeps layouts in memory.
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// duration wraps time.Duration with TOML string parsing ("30s", "2m").
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// Duration returns the solver deadline as a time.Duration.
func (s SolverConfig) Duration() time.Duration {
	return time.Duration(s.Deadline)
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: CacheBackendFile},
	}
}

// Load reads the configuration from path. An empty path falls back to
// [DefaultPath]; a missing file returns [Default].
func Load(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return Default(), nil
		}
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the XDG config location
// (~/.config/floorplan/floorplan.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "floorplan", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "floorplan", FileName), nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "", CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"cache backend must be file, redis, or none, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheBackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidInput, "redis cache backend needs redis_addr")
	}
	return nil
}
