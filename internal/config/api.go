package config

import (
	"os"

	"github.com/innovyom/breedscan/pkg/formatting"
	"github.com/innovyom/breedscan/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Origins:          "BREEDSCAN_CORS_ORIGINS",
	AllowedMethods:   "BREEDSCAN_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "BREEDSCAN_CORS_ALLOWED_HEADERS",
	AllowCredentials: "BREEDSCAN_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "BREEDSCAN_CORS_MAX_AGE",
}

// APIConfig holds API routing, upload, and CORS settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
}

func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 8 * 1024 * 1024 // 8MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.CORS.Finalize(corsEnv)
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "8MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("BREEDSCAN_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("BREEDSCAN_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}
