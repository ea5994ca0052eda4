package integrity

import (
	"context"

	"catalog-sync/core/registry"
	"catalog-sync/core/storage"
	"catalog-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	profiles []registry.Profile
	db       *gorm.DB
	client   storage.Client
	bucket   string
	logger   *zap.Logger
}

// NewService creates a new integrity service. db and client may be nil when
// those backends are not in use.
func NewService(profiles []registry.Profile, db *gorm.DB, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		profiles: profiles,
		db:       db,
		client:   client,
		bucket:   bucket,
		logger:   logger,
	}
}

// CheckStores reports the credential state of each configured store.
func (s *Service) CheckStores() []checks.StoreReport {
	return checks.CheckStores(s.profiles)
}

// CheckDatabase verifies the store_profiles schema.
func (s *Service) CheckDatabase() (*checks.TableReport, error) {
	return checks.CheckProfileTable(s.db)
}

// CheckStorage verifies the SKU list bucket.
func (s *Service) CheckStorage(ctx context.Context) error {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}
