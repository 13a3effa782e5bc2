// Package infrastructure provides core service initialization for application
// startup. It assembles common dependencies (logging, breed catalog, the
// inference gateway, and optional database access) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/innovyom/breedscan/internal/breeds"
	"github.com/innovyom/breedscan/internal/config"
	"github.com/innovyom/breedscan/internal/inference"
	"github.com/innovyom/breedscan/pkg/database"
	"github.com/innovyom/breedscan/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil unless the breed catalog is backed by PostgreSQL.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Inference *inference.Client
	Breeds    breeds.Store
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	client := inference.NewClient(
		cfg.Provider.URL,
		cfg.Provider.APIKey,
		"breedscan/"+cfg.Version,
		cfg.Provider.TimeoutDuration(),
	)
	if !client.Configured() {
		logger.Warn("inference provider not configured; predictions will fail until provider url and api key are set")
	}

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Inference: client,
	}

	if err := infra.initBreeds(cfg); err != nil {
		return nil, err
	}

	return infra, nil
}

// initBreeds selects the breed catalog backend: the built-in catalog, a TOML
// catalog file, or PostgreSQL.
func (i *Infrastructure) initBreeds(cfg *config.Config) error {
	if cfg.Breeds.Source == config.BreedsSourcePostgres {
		db, err := database.New(&cfg.Database, i.Logger)
		if err != nil {
			return fmt.Errorf("database init failed: %w", err)
		}
		i.Database = db
		i.Breeds = breeds.NewSQLStore(db.Connection(), i.Logger)
		return nil
	}

	records := breeds.DefaultCatalog()
	if cfg.Breeds.Catalog != "" {
		loaded, err := breeds.LoadCatalog(cfg.Breeds.Catalog)
		if err != nil {
			return fmt.Errorf("catalog load failed: %w", err)
		}
		records = loaded
	}

	store, err := breeds.NewMemoryStore(records)
	if err != nil {
		return fmt.Errorf("breed store init failed: %w", err)
	}
	i.Breeds = store
	return nil
}

// Start registers infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}
	return nil
}
