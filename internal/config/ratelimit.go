package config

import (
	"strconv"
	"time"
)

// RateLimitConfig controls the fixed-window limiter applied to the
// auth endpoints.  Disabled limits (or a missing Redis client) turn
// the middleware into a pass-through.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // requests allowed per window
	Window  time.Duration // window length
	Prefix  string        // redis key namespace
}

// LoadRateLimitConfig reads the limiter settings from the environment,
// falling back to 20 requests per minute.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Limit:   20,
		Window:  time.Minute,
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if s := getenv("RATE_LIMIT_PER_WINDOW", ""); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.Limit = n
		}
	}
	if w := getenv("RATE_LIMIT_WINDOW", ""); w != "" {
		if d, err := time.ParseDuration(w); err == nil && d > 0 {
			cfg.Window = d
		}
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	return cfg
}
