package config

import (
	"fmt"
	"os"
)

const (
	EnvBreedsSource  = "BREEDSCAN_BREEDS_SOURCE"
	EnvBreedsCatalog = "BREEDSCAN_BREEDS_CATALOG"

	BreedsSourceMemory   = "memory"
	BreedsSourcePostgres = "postgres"
)

// BreedsConfig selects the breed catalog backend. The memory source serves
// the built-in catalog, or a TOML catalog file when Catalog is set; the
// postgres source reads from the database configured under [database].
type BreedsConfig struct {
	Source  string `toml:"source"`
	Catalog string `toml:"catalog"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *BreedsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *BreedsConfig) Merge(overlay *BreedsConfig) {
	if overlay.Source != "" {
		c.Source = overlay.Source
	}
	if overlay.Catalog != "" {
		c.Catalog = overlay.Catalog
	}
}

func (c *BreedsConfig) loadDefaults() {
	if c.Source == "" {
		c.Source = BreedsSourceMemory
	}
}

func (c *BreedsConfig) loadEnv() {
	if v := os.Getenv(EnvBreedsSource); v != "" {
		c.Source = v
	}
	if v := os.Getenv(EnvBreedsCatalog); v != "" {
		c.Catalog = v
	}
}

func (c *BreedsConfig) validate() error {
	switch c.Source {
	case BreedsSourceMemory, BreedsSourcePostgres:
		return nil
	default:
		return fmt.Errorf("invalid breeds source: %q", c.Source)
	}
}
