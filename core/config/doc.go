// Package config manages application configuration.
//
// It uses Viper to load configuration from environment variables and .env files.
// The configuration is hierarchical and split into modules (Server, Log, Catalog,
// Stores, Batch, Database, Storage), each owned by the package that consumes it.
//
// # Loading Order
//
//  1. .env file in the given directory (overrides the process environment)
//  2. Environment variables (SECTION_KEY, e.g. CATALOG_TIMEOUT_SECONDS)
//  3. Defaults declared with `default:"..."` struct tags
//
// # Store Credentials
//
// Store profiles are not a fixed section: each configured store key reads its
// own variables (WILSON_US_HASH, WILSON_US_ACCESS_TOKEN, ...). Config.Lookup
// exposes those free-form keys to the registry.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
