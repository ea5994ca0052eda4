package registry

import "strings"

// Profile sources.
const (
	SourceEnv      = "env"
	SourceDatabase = "database"
)

// Config selects where store profiles are loaded from.
type Config struct {
	// Source is "env" or "database".
	Source string `mapstructure:"source" default:"env"`
	// Keys is the comma separated list of store keys to expose.
	Keys string `mapstructure:"keys" default:"wilson_us,signal_us,wilson_ca,signal_ca"`
}

// KeyList returns the configured keys, trimmed, without blanks.
func (c Config) KeyList() []string {
	var keys []string
	for _, k := range strings.Split(c.Keys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
