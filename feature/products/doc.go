// Package products exposes product reconciliation over HTTP.
//
// Requests are form encoded, matching the operator web page that drives the
// service, and every response carries a "success" flag.
//
// # HTTP Endpoints
//
//   - GET /stores : Lists store keys and display names.
//   - POST /import : Copies one SKU (sku, source_store, target_store, update_if_exists).
//   - POST /batch_import : Copies many SKUs from sku_file or sku_list.
//   - POST /compare : Reads a SKU from two stores (store_a, store_b, sku_a, sku_b).
//   - POST /get_product : Reads one SKU (store, sku).
//   - POST /update_target : Writes fields flagged with sync_<field> to store_b/sku_b.
//
// Missing input yields 400. Unknown SKUs yield 404, store API failures 502.
package products
