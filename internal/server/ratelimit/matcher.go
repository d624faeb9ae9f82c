package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the policy for a request path and method.
// Exact path matches win over prefix matches; paths ending in "/"
// match by prefix. Returns nil when no policy applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health probes must never be throttled.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}
	return nil
}
