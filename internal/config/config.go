// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment variables that override config file values
const (
	EnvSkeleton    = "CV_SKELETON"
	EnvDataDir     = "CV_DATA_DIR"
	EnvDataURL     = "CV_DATA_URL"
	EnvDefaultLang = "CV_DEFAULT_LANG"
	EnvPort        = "CV_PORT"
	EnvLogLevel    = "CV_LOG_LEVEL"
	EnvLogFormat   = "CV_LOG_FORMAT"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Skeleton string `json:"skeleton,omitempty"`                          // Path or URL of the HTML skeleton
	DataDir  string `json:"data_dir,omitempty"`                          // Directory holding data_<lang>.json
	DataURL  string `json:"data_url,omitempty" validate:"omitempty,url"` // Base URL serving /data_<lang>.json

	// Behavior
	DefaultLang         string `json:"default_lang,omitempty" validate:"omitempty,oneof=en de fr"`           // Language applied on page load
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds,omitempty" validate:"min=0"`                     // HTTP timeout for record fetches
	AllowStaleResponses bool   `json:"allow_stale_responses,omitempty"`                                      // Let older responses overwrite newer ones
	Verbose             bool   `json:"verbose,omitempty"`                                                    // Print binding reports
	LogLevel            string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"` // Logger level
	LogFormat           string `json:"log_format,omitempty" validate:"omitempty,oneof=console json"`         // Logger encoding

	// Server
	Port               int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"` // HTTP port
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty"`                     // Fetching requests per client; negative disables
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DataDir:             "public",
		DefaultLang:         "de",
		FetchTimeoutSeconds: 10,
		LogLevel:            "info",
		LogFormat:           "console",
		Port:                8080,
		RateLimitPerMinute:  60,
	}
}

// LoadConfig loads configuration from a JSON file.
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.DataDir != "" && c.DataURL != "" {
		return fmt.Errorf("config error: 'data_dir' and 'data_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty. Data location is taken as a pair so
	// a configured URL is not combined with the default directory.
	if result.Skeleton == "" {
		result.Skeleton = defaults.Skeleton
	}
	if result.DataDir == "" && result.DataURL == "" {
		result.DataDir = defaults.DataDir
		result.DataURL = defaults.DataURL
	}
	if result.DefaultLang == "" {
		result.DefaultLang = defaults.DefaultLang
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Int fields: use default if zero
	if result.FetchTimeoutSeconds == 0 {
		result.FetchTimeoutSeconds = defaults.FetchTimeoutSeconds
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitPerMinute == 0 {
		result.RateLimitPerMinute = defaults.RateLimitPerMinute
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSkeleton); v != "" {
		c.Skeleton = v
	}
	if v := getenv(EnvDataURL); v != "" {
		c.DataURL = v
		c.DataDir = ""
	}
	if v := getenv(EnvDataDir); v != "" {
		c.DataDir = v
		c.DataURL = ""
	}
	if v := getenv(EnvDefaultLang); v != "" {
		c.DefaultLang = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvPort, err)
		}
		c.Port = port
	}
	return nil
}

// DataLocation returns the record source: the data URL when set, otherwise the data directory.
func (c *Config) DataLocation() string {
	if c.DataURL != "" {
		return c.DataURL
	}
	return c.DataDir
}

// FetchTimeout returns the record fetch timeout.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}
