package reconcile

import (
	"context"
	"errors"
	"fmt"

	"catalog-sync/core/batch"
	"catalog-sync/core/catalog"
	"catalog-sync/core/mapping"
	"catalog-sync/core/metrics"

	"go.uber.org/zap"
)

// ErrMissingSKU is returned when a request has no SKU.
var ErrMissingSKU = errors.New("sku is required")

// Engine reconciles product records between stores. It keeps no state
// between calls; every decision is made on fresh lookups.
type Engine struct {
	stores Resolver
	runner *batch.Runner
	logger *zap.Logger
}

// NewEngine creates an engine. A nil runner processes batches sequentially
// without delay.
func NewEngine(stores Resolver, runner *batch.Runner, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if runner == nil {
		runner = batch.NewRunner(batch.Config{}, logger)
	}
	return &Engine{stores: stores, runner: runner, logger: logger}
}

// Stores maps every configured store key to its display name.
func (e *Engine) Stores() map[string]string {
	return e.stores.Names()
}

// DisplayName returns the display name of a store key.
func (e *Engine) DisplayName(key string) string {
	return e.stores.DisplayName(key)
}

// Get returns the normalized record for a SKU, or nil if the store has none.
func (e *Engine) Get(ctx context.Context, store, sku string) (rec *mapping.Record, err error) {
	defer func() { e.observe("get", outcomeOf(rec != nil, "found", "absent"), err) }()

	if sku == "" {
		return nil, ErrMissingSKU
	}
	s, err := e.stores.Resolve(store)
	if err != nil {
		return nil, err
	}
	return e.lookup(ctx, s.Client, s.Profile.Storefront(), sku)
}

// Compare reads a SKU from two stores. skuB defaults to skuA. The first
// store must have the record; the second may not.
func (e *Engine) Compare(ctx context.Context, storeA, storeB, skuA, skuB string) (cmp *Comparison, err error) {
	defer func() { e.observe("compare", outcomeOf(cmp != nil && cmp.RecordB != nil, "both", "one"), err) }()

	if skuA == "" {
		return nil, ErrMissingSKU
	}
	if skuB == "" {
		skuB = skuA
	}

	a, err := e.stores.Resolve(storeA)
	if err != nil {
		return nil, err
	}
	b, err := e.stores.Resolve(storeB)
	if err != nil {
		return nil, err
	}

	recA, err := e.lookup(ctx, a.Client, a.Profile.Storefront(), skuA)
	if err != nil {
		return nil, err
	}
	if recA == nil {
		return nil, &NotFoundError{Store: storeA, SKU: skuA}
	}

	recB, err := e.lookup(ctx, b.Client, b.Profile.Storefront(), skuB)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		StoreA:     storeA,
		StoreB:     storeB,
		StoreAName: a.Profile.Name(),
		StoreBName: b.Profile.Name(),
		SKUA:       skuA,
		SKUB:       skuB,
		RecordA:    recA,
		RecordB:    recB,
	}, nil
}

// Reconcile makes the destination hold the source's record for a SKU.
// A missing destination record is created. An existing one is skipped
// unless an update is requested: a non-empty selection updates only the
// selected fields, otherwise UpdateIfExists applies the full record.
func (e *Engine) Reconcile(ctx context.Context, req Request) (res *Result, err error) {
	defer func() { e.observe("reconcile", outcomeOfResult(res), err) }()

	if req.SKU == "" {
		return nil, ErrMissingSKU
	}

	src, err := e.stores.Resolve(req.Source)
	if err != nil {
		return nil, err
	}
	dst, err := e.stores.Resolve(req.Destination)
	if err != nil {
		return nil, err
	}

	log := e.logger.With(
		zap.String("source", req.Source),
		zap.String("destination", req.Destination),
		zap.String("sku", req.SKU),
	)

	source, err := src.Client.FindBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, &NotFoundError{Store: req.Source, SKU: req.SKU}
	}

	destSKU := req.destinationSKU()
	existing, err := dst.Client.FindBySKU(ctx, destSKU)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		record := mapping.Extract(source, src.Client.BrandName(ctx, source.BrandID), src.Profile.Storefront())
		created, err := dst.Client.Create(ctx, mapping.ImportPayload(record))
		if err != nil {
			return nil, err
		}
		log.Info("Product created", zap.Int("product_id", created.ID))
		return &Result{
			SKU:       req.SKU,
			Action:    ActionCreated,
			Success:   true,
			ProductID: created.ID,
			Message:   fmt.Sprintf("created product %s in %s", req.SKU, dst.Profile.Name()),
		}, nil
	}

	var payload catalog.Payload
	switch {
	case !req.Selection.Empty():
		payload, err = mapping.UpdatePayload(req.Selection, req.Values)
		if err != nil {
			return nil, err
		}
		if len(payload) == 0 {
			return &Result{
				SKU:       req.SKU,
				Action:    ActionNoop,
				Success:   true,
				ProductID: existing.ID,
				Message:   "no fields to update",
			}, nil
		}
	case req.UpdateIfExists:
		record := mapping.Extract(source, src.Client.BrandName(ctx, source.BrandID), src.Profile.Storefront())
		payload = mapping.ImportPayload(record)
	default:
		log.Info("Product already exists, skipping", zap.Int("product_id", existing.ID))
		return &Result{
			SKU:       req.SKU,
			Action:    ActionSkipped,
			Success:   false,
			ProductID: existing.ID,
			Message:   fmt.Sprintf("product %s already exists in %s", destSKU, dst.Profile.Name()),
		}, nil
	}

	if _, err := dst.Client.Update(ctx, existing.ID, payload); err != nil {
		return nil, err
	}
	log.Info("Product updated", zap.Int("product_id", existing.ID), zap.Int("fields", len(payload)))
	return &Result{
		SKU:       req.SKU,
		Action:    ActionUpdated,
		Success:   true,
		ProductID: existing.ID,
		Message:   fmt.Sprintf("updated product %s in %s", destSKU, dst.Profile.Name()),
	}, nil
}

// ReconcileBatch reconciles each SKU independently and returns one outcome
// per SKU in input order.
func (e *Engine) ReconcileBatch(ctx context.Context, source, destination string, skus []string, updateIfExists bool) []batch.Result {
	return e.runner.Run(ctx, skus, func(ctx context.Context, sku string) batch.Result {
		res, err := e.Reconcile(ctx, Request{
			Source:         source,
			Destination:    destination,
			SKU:            sku,
			UpdateIfExists: updateIfExists,
		})
		return Outcome(sku, res, err)
	})
}

// ApplyFieldSync writes the selected caller values to an existing record.
func (e *Engine) ApplyFieldSync(ctx context.Context, store, sku string, sel mapping.Selection, values map[string]any) (res *Result, err error) {
	defer func() { e.observe("field_sync", outcomeOfResult(res), err) }()

	if sku == "" {
		return nil, ErrMissingSKU
	}
	s, err := e.stores.Resolve(store)
	if err != nil {
		return nil, err
	}

	payload, err := mapping.UpdatePayload(sel, values)
	if err != nil {
		return nil, err
	}

	existing, err := s.Client.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Store: store, SKU: sku}
	}

	if len(payload) == 0 {
		return &Result{SKU: sku, Action: ActionNoop, Success: true, ProductID: existing.ID, Message: "no fields to update"}, nil
	}

	if _, err := s.Client.Update(ctx, existing.ID, payload); err != nil {
		return nil, err
	}
	e.logger.Info("Product fields synced",
		zap.String("store", store),
		zap.String("sku", sku),
		zap.Strings("fields", sel.Fields()),
	)
	return &Result{
		SKU:       sku,
		Action:    ActionUpdated,
		Success:   true,
		ProductID: existing.ID,
		Message:   fmt.Sprintf("updated product %s in %s", sku, s.Profile.Name()),
	}, nil
}

// Outcome converts a result or error into a batch item outcome.
func Outcome(sku string, res *Result, err error) batch.Result {
	if err != nil {
		return batch.Result{SKU: sku, Success: false, Error: err.Error()}
	}
	if res == nil {
		return batch.Result{SKU: sku, Success: false, Error: "no result"}
	}
	return batch.Result{
		SKU:     sku,
		Success: res.Success,
		Action:  string(res.Action),
		Message: res.Message,
	}
}

func (e *Engine) lookup(ctx context.Context, c catalog.Client, storefront, sku string) (*mapping.Record, error) {
	p, err := c.FindBySKU(ctx, sku)
	if err != nil || p == nil {
		return nil, err
	}
	rec := mapping.Extract(p, c.BrandName(ctx, p.BrandID), storefront)
	return &rec, nil
}

func (e *Engine) observe(operation, outcome string, err error) {
	if err != nil {
		outcome = errorOutcome(err)
	}
	metrics.Operations.WithLabelValues(operation, outcome).Inc()
}

func errorOutcome(err error) string {
	var notFound *NotFoundError
	var coercion *mapping.FieldCoercionError
	var remote *catalog.RemoteError
	switch {
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &coercion):
		return "invalid"
	case errors.As(err, &remote):
		return "remote_error"
	default:
		return "error"
	}
}

func outcomeOf(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}

func outcomeOfResult(res *Result) string {
	if res == nil {
		return "error"
	}
	return string(res.Action)
}
