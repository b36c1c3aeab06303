// Package config provides configuration loading and validation for the CLI and API server.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in defaults used when neither the config file nor the environment sets a value
const (
	DefaultPort            = 8080
	DefaultSessionTTL      = 2 * time.Hour
	DefaultCleanupInterval = 5 * time.Minute
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port     int    `json:"port,omitempty" yaml:"port,omitempty"`         // HTTP listen port
	Template string `json:"template,omitempty" yaml:"template,omitempty"` // Path to a custom LaTeX template
	WorkDir  string `json:"work_dir,omitempty" yaml:"work_dir,omitempty"` // pdflatex output directory
	Verbose  bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`   // Log every request

	SessionTTL      Duration `json:"session_ttl,omitempty" yaml:"session_ttl,omitempty"`           // Idle time before a session is evicted
	CleanupInterval Duration `json:"cleanup_interval,omitempty" yaml:"cleanup_interval,omitempty"` // How often idle sessions are swept

	AllowedOrigins []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"` // CORS origins; "*" allows any

	RateLimit RateLimitConfig `json:"rate_limit,omitempty" yaml:"rate_limit,omitempty"`
}

// RateLimitConfig holds file-level rate limit settings. RATE_LIMIT_* environment
// variables take precedence over these.
type RateLimitConfig struct {
	Enabled       *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	DefaultLimit  int      `json:"default_limit,omitempty" yaml:"default_limit,omitempty"`
	DefaultWindow Duration `json:"default_window,omitempty" yaml:"default_window,omitempty"`
	Whitelist     []string `json:"whitelist,omitempty" yaml:"whitelist,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:            DefaultPort,
		SessionTTL:      Duration(DefaultSessionTTL),
		CleanupInterval: Duration(DefaultCleanupInterval),
		AllowedOrigins:  []string{"*"},
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Load builds the effective configuration: built-in defaults, then the file at
// path (if any), then environment variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// ApplyEnv overrides fields from PORT, RESUME_TEMPLATE, LATEX_WORK_DIR,
// SESSION_TTL, SESSION_CLEANUP_INTERVAL and CORS_ALLOWED_ORIGINS.
func (c *Config) ApplyEnv() {
	c.Port = EnvInt("PORT", c.Port)
	c.Template = EnvString("RESUME_TEMPLATE", c.Template)
	c.WorkDir = EnvString("LATEX_WORK_DIR", c.WorkDir)
	c.Verbose = EnvBool("VERBOSE", c.Verbose)
	c.SessionTTL = Duration(EnvDuration("SESSION_TTL", c.SessionTTL.Std()))
	c.CleanupInterval = Duration(EnvDuration("SESSION_CLEANUP_INTERVAL", c.CleanupInterval.Std()))
	c.AllowedOrigins = EnvList("CORS_ALLOWED_ORIGINS", c.AllowedOrigins)
}

// Validate checks that the configuration has valid values.
// Zero values are allowed since they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("config error: 'session_ttl' must be non-negative")
	}
	if c.CleanupInterval < 0 {
		return fmt.Errorf("config error: 'cleanup_interval' must be non-negative")
	}
	if c.RateLimit.DefaultLimit < 0 {
		return fmt.Errorf("config error: 'rate_limit.default_limit' must be non-negative")
	}
	if c.RateLimit.DefaultWindow < 0 {
		return fmt.Errorf("config error: 'rate_limit.default_window' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.WorkDir == "" {
		result.WorkDir = defaults.WorkDir
	}
	if result.SessionTTL == 0 {
		result.SessionTTL = defaults.SessionTTL
	}
	if result.CleanupInterval == 0 {
		result.CleanupInterval = defaults.CleanupInterval
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	if result.RateLimit.Enabled == nil {
		result.RateLimit.Enabled = defaults.RateLimit.Enabled
	}
	if result.RateLimit.DefaultLimit == 0 {
		result.RateLimit.DefaultLimit = defaults.RateLimit.DefaultLimit
	}
	if result.RateLimit.DefaultWindow == 0 {
		result.RateLimit.DefaultWindow = defaults.RateLimit.DefaultWindow
	}
	if len(result.RateLimit.Whitelist) == 0 {
		result.RateLimit.Whitelist = defaults.RateLimit.Whitelist
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
