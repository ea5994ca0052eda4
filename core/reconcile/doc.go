// Package reconcile moves product records between stores keyed by SKU.
//
// For each request the Engine resolves both stores, probes the source and
// then the destination, and decides:
//
//   - source absent: *NotFoundError, the destination is never contacted
//   - destination absent: create with the full import payload
//   - destination present, no update requested: skipped (not an error)
//   - destination present with a field selection: update only those fields
//   - destination present with UpdateIfExists: update with the full payload
//
// Nothing is cached between calls. Store credentials and clients come from a
// Resolver, normally a *registry.Registry.
//
// # Usage
//
//	engine := reconcile.NewEngine(reg, batch.NewRunner(cfg.Batch, logger), logger)
//
//	res, err := engine.Reconcile(ctx, reconcile.Request{
//	    Source:      "wilson_us",
//	    Destination: "signal_ca",
//	    SKU:         "460127",
//	})
//
//	results := engine.ReconcileBatch(ctx, "wilson_us", "signal_ca", skus, false)
package reconcile
