// Package config loads the calgrid configuration file.
//
// The file is TOML, by default at ~/.config/calgrid/config.toml. Every
// field has a default, so running without a config file works; the file
// only overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/calgrid/calgrid/pkg/errors"
)

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA zone used for day boundaries (e.g. "Europe/Madrid").
	Timezone string `toml:"timezone"`

	// WeekStart is the first weekday of the week by name ("monday", "sunday", ...).
	WeekStart string `toml:"week_start"`

	// HourHeight is the vertical scale for day layouts in user units per hour.
	HourHeight float64 `toml:"hour_height"`

	// Listen is the HTTP listen address for the serve command.
	Listen string `toml:"listen"`

	Cache   CacheConfig   `toml:"cache"`
	Sources SourcesConfig `toml:"sources"`
}

// CacheConfig selects and configures the layout cache backend.
type CacheConfig struct {
	// Backend is one of "none", "memory", "file", "redis".
	Backend string `toml:"backend"`

	// Dir is the file backend's directory. Empty means
	// <user cache dir>/calgrid.
	Dir string `toml:"dir"`

	// TTLMinutes is how long results stay cached. Zero means the
	// pipeline default.
	TTLMinutes int `toml:"ttl_minutes"`

	Redis RedisConfig `toml:"redis"`
}

// RedisConfig holds connection settings for the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SourcesConfig lists the configured event sources.
type SourcesConfig struct {
	ICS   []ICSSource  `toml:"ics"`
	Mongo *MongoSource `toml:"mongo"`
}

// ICSSource describes one ICS file or subscription.
type ICSSource struct {
	// Name labels the source and buckets its events for color assignment.
	Name string `toml:"name"`

	// Location is a local path or an http(s) URL.
	Location string `toml:"location"`
}

// MongoSource describes a MongoDB event collection.
type MongoSource struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timezone:   "UTC",
		WeekStart:  "monday",
		HourHeight: 50,
		Listen:     "127.0.0.1:8484",
		Cache: CacheConfig{
			Backend: "file",
		},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "calgrid", "config.toml"), nil
}

// DefaultCacheDir returns the standard file-cache directory.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "calgrid"), nil
}

// Load reads the config at path, layered over defaults. An empty path
// selects DefaultPath; a missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that would otherwise fail deep inside the
// pipeline.
func (c *Config) Validate() error {
	if _, err := errors.ParseTimezone(c.Timezone); err != nil {
		return err
	}
	if _, err := errors.ParseWeekStart(c.WeekStart); err != nil {
		return err
	}
	if err := errors.ValidateHourHeight(c.HourHeight); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", "none", "memory", "file", "redis":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "invalid cache backend: %q (must be one of: none, memory, file, redis)", c.Cache.Backend)
	}
	return nil
}
