package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the request body size (SKU file uploads).
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"4"`
}

const (
	minBodyLimitMB     = 1
	defaultBodyLimitMB = 4
)

// BodyLimitBytes returns the request body limit in bytes, falling back to the
// default when the configured value is not positive.
func (c Config) BodyLimitBytes() int {
	limit := c.BodyLimitMB
	if limit < minBodyLimitMB {
		limit = defaultBodyLimitMB
	}
	return limit * 1024 * 1024
}

// IsProtected reports whether API key authentication is enabled.
func (c Config) IsProtected() bool {
	return c.ApiKey != ""
}
