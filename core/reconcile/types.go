package reconcile

import (
	"fmt"

	"catalog-sync/core/mapping"
	"catalog-sync/core/registry"
)

// Resolver gives the engine access to configured stores.
type Resolver interface {
	// Resolve returns the store for a key or a *registry.ConfigurationError.
	Resolve(key string) (registry.Store, error)
	// Names maps store keys to display names.
	Names() map[string]string
	// DisplayName returns the display name of a key.
	DisplayName(key string) string
}

// Action is what a reconciliation did to the destination.
type Action string

const (
	// ActionCreated means the record was created at the destination.
	ActionCreated Action = "created"
	// ActionUpdated means an existing destination record was updated.
	ActionUpdated Action = "updated"
	// ActionSkipped means the record existed and no update was requested.
	ActionSkipped Action = "skipped"
	// ActionNoop means an update was requested but carried no fields.
	ActionNoop Action = "noop"
)

// Request describes one reconciliation.
type Request struct {
	// Source and Destination are store keys.
	Source      string
	Destination string
	// SKU is looked up in the source store.
	SKU string
	// DestinationSKU overrides the destination lookup. Defaults to SKU.
	DestinationSKU string
	// UpdateIfExists applies the full source record to an existing destination record.
	UpdateIfExists bool
	// Selection limits an update to the named fields, valued from Values.
	Selection mapping.Selection
	Values    map[string]any
}

func (r Request) destinationSKU() string {
	if r.DestinationSKU != "" {
		return r.DestinationSKU
	}
	return r.SKU
}

// Result is the outcome of a write-capable operation.
type Result struct {
	SKU       string `json:"sku"`
	Action    Action `json:"action"`
	Success   bool   `json:"success"`
	ProductID int    `json:"product_id,omitempty"`
	Message   string `json:"message"`
}

// Comparison holds the same SKU as seen by two stores.
type Comparison struct {
	StoreA     string          `json:"store_a"`
	StoreB     string          `json:"store_b"`
	StoreAName string          `json:"store_a_name"`
	StoreBName string          `json:"store_b_name"`
	SKUA       string          `json:"sku_a"`
	SKUB       string          `json:"sku_b"`
	RecordA    *mapping.Record `json:"product_a"`
	RecordB    *mapping.Record `json:"product_b"`
}

// NotFoundError reports a SKU that a required store does not have.
type NotFoundError struct {
	Store string
	SKU   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with SKU %q not found in store %s", e.SKU, e.Store)
}
