// Package registry holds the configured stores.
//
// Profiles come either from the environment (FromConfig, one set of
// <KEY>_HASH / <KEY>_ACCESS_TOKEN / <KEY>_CLIENT_ID variables per key) or
// from the store_profiles table (FromDatabase). A Registry is built once at
// startup and only read afterwards; the catalog client of a store is created
// on its first Resolve and reused.
package registry
