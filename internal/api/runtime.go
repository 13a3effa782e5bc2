package api

import (
	"github.com/innovyom/breedscan/internal/config"
	"github.com/innovyom/breedscan/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	MaxUploadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Inference: infra.Inference,
			Breeds:    infra.Breeds,
			Database:  infra.Database,
		},
		MaxUploadSize: cfg.API.MaxUploadSizeBytes(),
	}
}
