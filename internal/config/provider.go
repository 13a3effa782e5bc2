package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvProviderURL     = "BREEDSCAN_PROVIDER_URL"
	EnvProviderAPIKey  = "BREEDSCAN_PROVIDER_API_KEY"
	EnvProviderTimeout = "BREEDSCAN_PROVIDER_TIMEOUT"
)

// ProviderConfig holds the remote classification endpoint parameters. URL and
// APIKey have no defaults; the service starts without them and reports the
// missing configuration on the first prediction request.
type ProviderConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// Configured reports whether both the endpoint and its key are set.
func (c *ProviderConfig) Configured() bool {
	return c.URL != "" && c.APIKey != ""
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *ProviderConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ProviderConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ProviderConfig) Merge(overlay *ProviderConfig) {
	if overlay.URL != "" {
		c.URL = overlay.URL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *ProviderConfig) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
}

func (c *ProviderConfig) loadEnv() {
	if v := os.Getenv(EnvProviderURL); v != "" {
		c.URL = v
	}
	if v := os.Getenv(EnvProviderAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvProviderTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *ProviderConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
