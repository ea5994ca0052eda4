package batch

import "time"

// Config paces multi-SKU runs.
type Config struct {
	// DelayMS is the minimum spacing between item starts. 0 disables pacing.
	DelayMS int `mapstructure:"delay_ms" default:"1000"`
	// Concurrency is the number of items processed at once.
	Concurrency int `mapstructure:"concurrency" default:"1"`
}

// Delay returns the spacing as a duration.
func (c Config) Delay() time.Duration {
	if c.DelayMS <= 0 {
		return 0
	}
	return time.Duration(c.DelayMS) * time.Millisecond
}
