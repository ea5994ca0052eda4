package catalog

import "time"

// Config holds settings shared by every store API client.
type Config struct {
	// APIURL is the base URL of the catalog API.
	APIURL string `mapstructure:"api_url" default:"https://api.bigcommerce.com"`
	// TimeoutSeconds bounds each remote call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the per-request timeout, falling back to 30 seconds.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
