// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags and environment variables.
type Config struct {
	// Paths
	Library string `json:"library,omitempty"` // Path to the idea library JSON document

	// Server
	Port    int    `json:"port,omitempty"`     // HTTP listen port
	BaseURL string `json:"base_url,omitempty"` // Public base URL used in report links

	// Providers
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key for report expansion
	CheckoutSecret string `json:"checkout_secret,omitempty"` // HMAC secret for payment webhooks
	TokenSecret    string `json:"token_secret,omitempty"`    // Signing secret for report unlock tokens
	AdminToken     string `json:"admin_token,omitempty"`     // Bearer token for the admin report listing

	// Email
	SESRegion string `json:"ses_region,omitempty"` // AWS region for SES
	FromEmail string `json:"from_email,omitempty"` // Sender address for report emails

	// Behavior
	RankLimit int  `json:"rank_limit,omitempty"` // Ranked ideas returned per request
	Verbose   bool `json:"verbose,omitempty"`    // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values.
// Required fields are enforced later, after flag and env merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}
	if c.RankLimit < 0 {
		return fmt.Errorf("config error: 'rank_limit' must be non-negative")
	}
	if c.Library != "" {
		if _, err := os.Stat(c.Library); os.IsNotExist(err) {
			return fmt.Errorf("config error: library file not found: %s", c.Library)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Library == "" {
		result.Library = defaults.Library
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.CheckoutSecret == "" {
		result.CheckoutSecret = defaults.CheckoutSecret
	}
	if result.TokenSecret == "" {
		result.TokenSecret = defaults.TokenSecret
	}
	if result.AdminToken == "" {
		result.AdminToken = defaults.AdminToken
	}
	if result.SESRegion == "" {
		result.SESRegion = defaults.SESRegion
	}
	if result.FromEmail == "" {
		result.FromEmail = defaults.FromEmail
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RankLimit == 0 {
		result.RankLimit = defaults.RankLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
