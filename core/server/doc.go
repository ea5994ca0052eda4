// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) handles the server startup; this
// package defines the settings it reads: listen port, API key and request body limit.
//
// # Usage
//
// This package is embedded by core/config and consumed by the start command and
// the auth middleware.
package server
