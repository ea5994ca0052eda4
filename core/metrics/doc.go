// Package metrics declares the Prometheus collectors shared by the engine,
// the store client and the batch runner, and the /metrics handler.
package metrics
