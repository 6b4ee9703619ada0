package nerdfont

import (
	"sync"
	"time"
)

// Config holds process-wide defaults for decoration.
type Config struct {
	// DebounceDelay is how long an Updater waits after a throttled trigger.
	DebounceDelay time.Duration

	// CombineSurrogates tests a valid surrogate pair as its supplementary
	// code point instead of testing each half against the table.
	CombineSurrogates bool
}

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = &Config{
			DebounceDelay:     500 * time.Millisecond,
			CombineSurrogates: false,
		}
	})
	return defaultConfig
}
