package tcping

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultPort        = 80
	DefaultCount       = 4
	DefaultTimeout     = 5 * time.Second
	DefaultInterval    = 1 * time.Second
	DefaultGracePeriod = 800 * time.Millisecond
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the fixed parameters of a probing session. The CLI does
// not expose them; DefaultConfig is what every run uses.
type Config struct {
	Timeout     time.Duration // bound on a single connect attempt
	Count       int           // attempt budget
	Interval    time.Duration // wait between attempts
	DefaultPort uint16        // port used when none is given
	GracePeriod time.Duration // how long an interrupted loop may take to finish
}

// DefaultConfig returns {Timeout: 5s, Count: 4, Interval: 1s, DefaultPort: 80, GracePeriod: 800ms}.
func DefaultConfig() Config {
	return Config{
		Timeout:     DefaultTimeout,
		Count:       DefaultCount,
		Interval:    DefaultInterval,
		DefaultPort: DefaultPort,
		GracePeriod: DefaultGracePeriod,
	}
}

// Validate checks the config for values the prober cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Count < 1:
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, c.Count)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval must not be negative, got %s", ErrInvalidConfig, c.Interval)
	case c.DefaultPort == 0:
		return fmt.Errorf("%w: default port must be in 1..65535 range", ErrInvalidConfig)
	}
	return nil
}
