package ratelimit

import (
	"time"

	"github.com/jonathan/resume-builder/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (a trailing "/" means prefix match)
	Method string        // HTTP method; empty matches any
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// LoadConfig builds the rate limit configuration from file settings, with
// RATE_LIMIT_* environment variables taking precedence.
func LoadConfig(file config.RateLimitConfig) *Config {
	cfg := DefaultConfig()

	enabled := cfg.Enabled
	if file.Enabled != nil {
		enabled = *file.Enabled
	}
	cfg.Enabled = config.EnvBool("RATE_LIMIT_ENABLED", enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}

	if file.DefaultLimit > 0 {
		cfg.DefaultLimit = file.DefaultLimit
	}
	if file.DefaultWindow > 0 {
		cfg.DefaultWindow = file.DefaultWindow.Std()
	}
	cfg.DefaultLimit = config.EnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = config.EnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = config.EnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)

	cfg.Whitelist = toSet(config.EnvList("RATE_LIMIT_WHITELIST", file.Whitelist))
	cfg.Blacklist = toSet(config.EnvList("RATE_LIMIT_BLACKLIST", nil))

	return cfg
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Session creation allocates server memory
		{Path: "/sessions", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},

		// Stateless rendering parses and renders a full snapshot per request
		{Path: "/render/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},

		// Form edits arrive on every keystroke
		{Path: "/sessions/", Method: "POST", Limit: 1200, Window: time.Minute, Burst: 100},

		// Reads (state, preview, download) fall through to the default limit
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
