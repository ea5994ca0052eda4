package cmd

import (
	"fmt"

	"catalog-sync/core/batch"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/mapping"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/registry"
	"catalog-sync/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps bundles what every command needs once configuration is loaded.
type deps struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	registry *registry.Registry
	engine   *reconcile.Engine
}

// bootstrap loads configuration, builds the logger and resolves store
// profiles. The database is connected when profiles live there, or when
// wantDB asks for it; in the latter case a failed connection is only logged.
func bootstrap(wantDB bool) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)
	mapping.SetLogger(logg)

	d := &deps{cfg: cfg, logger: logg}

	fromDB := cfg.Stores.Source == registry.SourceDatabase
	if fromDB || wantDB {
		conn, err := database.Connect(cfg.Database)
		switch {
		case err != nil && fromDB:
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		case err != nil:
			logg.Warn("Optional database connection failed", zap.Error(err))
		default:
			d.db = conn
		}
	}

	profiles, err := d.loadProfiles()
	if err != nil {
		return nil, err
	}

	d.registry = registry.New(profiles, registry.HTTPClients(cfg.Catalog, logg))
	d.engine = reconcile.NewEngine(d.registry, batch.NewRunner(cfg.Batch, logg), logg)
	return d, nil
}

func (d *deps) loadProfiles() ([]registry.Profile, error) {
	keys := d.cfg.Stores.KeyList()
	switch d.cfg.Stores.Source {
	case registry.SourceDatabase:
		return registry.FromDatabase(d.db, keys)
	case registry.SourceEnv, "":
		return registry.FromConfig(keys, d.cfg.Lookup), nil
	default:
		return nil, fmt.Errorf("unsupported store source: %s", d.cfg.Stores.Source)
	}
}

// storageClient creates the object storage client.
func (d *deps) storageClient() (storage.Client, error) {
	client, err := storage.NewClient(d.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}
