// Package utils provides common utility functions for the catalog-sync application.
// It includes loose type conversions used when reading caller-submitted form values
// and remote payloads.
package utils
