// Package integrity provides configuration health checks.
//
// None of the checks contact a store. They validate what the service needs
// before any reconciliation can run.
//
// # Checks Provided
//
//   - Stores: Reports, per configured store, which credential settings are missing.
//   - Database: Validates that the store_profiles table has the columns the registry reads.
//   - Storage: Verifies that the SKU list bucket exists.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks. Unused backends are reported as skipped.
//   - GET /integrity/stores : Runs the store credential check.
//   - GET /integrity/database : Runs the profile table check.
//   - GET /integrity/storage : Runs the bucket check.
package integrity
