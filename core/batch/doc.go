// Package batch runs an operation over many SKUs.
//
// Results keep input order. Each item is isolated: errors and panics become
// a failed Result and processing continues. A rate limiter spaces item
// starts so remote stores are not flooded, and an errgroup bounds how many
// items run at once (one by default).
package batch
