package products

import (
	"context"
	"io"

	"catalog-sync/core/batch"
	"catalog-sync/core/mapping"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/skulist"

	"go.uber.org/zap"
)

// Service exposes the reconciliation engine to HTTP handlers.
type Service struct {
	engine *reconcile.Engine
	logger *zap.Logger
}

// NewService creates a new products service.
func NewService(engine *reconcile.Engine, logger *zap.Logger) *Service {
	return &Service{engine: engine, logger: logger}
}

// Stores lists the configured stores.
func (s *Service) Stores() map[string]string {
	return s.engine.Stores()
}

// StoreName returns the display name of a store.
func (s *Service) StoreName(key string) string {
	return s.engine.DisplayName(key)
}

// Import copies one SKU between stores.
func (s *Service) Import(ctx context.Context, source, target, sku string, updateIfExists bool) (*reconcile.Result, error) {
	return s.engine.Reconcile(ctx, reconcile.Request{
		Source:         source,
		Destination:    target,
		SKU:            sku,
		UpdateIfExists: updateIfExists,
	})
}

// BatchImport copies every SKU and summarizes the outcomes.
func (s *Service) BatchImport(ctx context.Context, source, target string, skus []string, updateIfExists bool) ([]batch.Result, batch.Summary) {
	results := s.engine.ReconcileBatch(ctx, source, target, skus, updateIfExists)
	return results, batch.Summarize(results)
}

// ParseSKUFile decodes an uploaded SKU list.
func (s *Service) ParseSKUFile(name string, r io.Reader) ([]string, error) {
	return skulist.ParseNamed(name, r)
}

// Compare reads a SKU from two stores.
func (s *Service) Compare(ctx context.Context, storeA, storeB, skuA, skuB string) (*reconcile.Comparison, error) {
	return s.engine.Compare(ctx, storeA, storeB, skuA, skuB)
}

// Get reads one record, nil when absent.
func (s *Service) Get(ctx context.Context, store, sku string) (*mapping.Record, error) {
	return s.engine.Get(ctx, store, sku)
}

// UpdateTarget writes the selected fields to the record in the target store.
func (s *Service) UpdateTarget(ctx context.Context, store, sku string, sel mapping.Selection, values map[string]any) (*reconcile.Result, error) {
	return s.engine.ApplyFieldSync(ctx, store, sku, sel, values)
}
