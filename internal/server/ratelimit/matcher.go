package ratelimit

import "strings"

// Match returns the configured route covering method and path.
// The health check is never limited.
func (c Config) Match(method, path string) (Route, bool) {
	if path == "/health" {
		return Route{}, false
	}
	for _, route := range c.Routes {
		if route.Method != method {
			continue
		}
		if path == route.Prefix || (strings.HasSuffix(route.Prefix, "/") && strings.HasPrefix(path, route.Prefix)) {
			return route, true
		}
	}
	return Route{}, false
}
