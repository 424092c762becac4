package ratelimit

import "time"

// Route is a method and path prefix whose requests are limited.
type Route struct {
	Method string
	Prefix string
}

// Config holds rate limiting configuration. A Limit of zero or less disables limiting.
type Config struct {
	Limit           int           // Maximum requests per window
	Window          time.Duration // Time window (defaults to one minute)
	Burst           int           // Burst capacity (defaults to Limit if 0)
	CleanupInterval time.Duration // How often idle buckets are evicted; 0 disables eviction
	Routes          []Route
}

// DefaultRoutes are the routes that fetch a content record per request.
func DefaultRoutes() []Route {
	return []Route{
		{Method: "POST", Prefix: "/lang/"},
		{Method: "GET", Prefix: "/render/"},
	}
}

// PerMinute returns a config allowing limit fetching requests per client per minute.
// A negative limit disables limiting.
func PerMinute(limit int) Config {
	return Config{
		Limit:           limit,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
		Routes:          DefaultRoutes(),
	}
}

// Enabled reports whether requests are limited at all.
func (c Config) Enabled() bool {
	return c.Limit > 0
}

func (c Config) window() time.Duration {
	if c.Window <= 0 {
		return time.Minute
	}
	return c.Window
}

func (c Config) capacity() int {
	if c.Burst > 0 {
		return c.Burst
	}
	return c.Limit
}

func (c Config) refillRate() float64 {
	return float64(c.Limit) / c.window().Seconds()
}
