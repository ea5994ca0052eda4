// Package mapping converts between remote products and the store-neutral
// Record, and builds outgoing payloads.
//
// ImportPayload produces the full body for a create. UpdatePayload walks the
// ordered Rules table for a caller's Selection: each rule names the
// destination key, the coercion applied to the caller's value, and whether
// an empty result is still sent (only booleans are). SKUs are never part of
// an update.
//
// JSON-valued fields (custom_fields, images) accept JSON text. Text that does
// not parse is forwarded unchanged and a warning is logged through the logger
// installed with SetLogger.
package mapping
