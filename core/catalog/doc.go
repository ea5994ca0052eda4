// Package catalog is the client for a single store's v3 catalog API.
//
// A Client performs exactly one remote call per operation and never retries.
// Lookups that find nothing return (nil, nil); transport failures, non-2xx
// responses and 2xx responses without a data object return *RemoteError.
// Brand resolution is best effort and degrades to an empty name.
//
// # Usage
//
//	c := catalog.NewClient("wilson_us", catalog.Credentials{
//	    StoreHash:   "abc123",
//	    AccessToken: token,
//	    ClientID:    clientID,
//	}, cfg.Catalog, logger)
//
//	p, err := c.FindBySKU(ctx, "SKU-1")
package catalog
