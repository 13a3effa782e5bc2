package config

import (
	"fmt"
	"os"
	"time"

	"github.com/innovyom/breedscan/pkg/database"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvBreedscanEnv             = "BREEDSCAN_ENV"
	EnvBreedscanShutdownTimeout = "BREEDSCAN_SHUTDOWN_TIMEOUT"
	EnvBreedscanVersion         = "BREEDSCAN_VERSION"
)

var databaseEnv = &database.Env{
	Host:         "BREEDSCAN_DB_HOST",
	Port:         "BREEDSCAN_DB_PORT",
	Name:         "BREEDSCAN_DB_NAME",
	User:         "BREEDSCAN_DB_USER",
	Password:     "BREEDSCAN_DB_PASSWORD",
	SSLMode:      "BREEDSCAN_DB_SSL_MODE",
	MaxOpenConns: "BREEDSCAN_DB_MAX_OPEN_CONNS",
	ConnTimeout:  "BREEDSCAN_DB_CONN_TIMEOUT",
}

// Config is the root configuration for the breedscan service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Provider        ProviderConfig  `toml:"provider"`
	API             APIConfig       `toml:"api"`
	Breeds          BreedsConfig    `toml:"breeds"`
	Database        database.Config `toml:"database"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the BREEDSCAN_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvBreedscanEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Provider.Merge(&overlay.Provider)
	c.API.Merge(&overlay.API)
	c.Breeds.Merge(&overlay.Breeds)
	c.Database.Merge(&overlay.Database)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Provider.Finalize(); err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Breeds.Finalize(); err != nil {
		return fmt.Errorf("breeds: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvBreedscanShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvBreedscanVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvBreedscanEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
