// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/marinestats/internal/logging"
)

// Validate checks that the loaded configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateTableau(); err != nil {
		return err
	}
	if err := c.validateSeed(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	switch c.Database.Backend {
	case BackendDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DATABASE_BACKEND=duckdb")
		}
	case BackendMongoDB:
		if c.Database.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when DATABASE_BACKEND=mongodb")
		}
		if !strings.HasPrefix(c.Database.MongoURI, "mongodb://") && !strings.HasPrefix(c.Database.MongoURI, "mongodb+srv://") {
			return fmt.Errorf("MONGODB_URI must start with mongodb:// or mongodb+srv://")
		}
	default:
		return fmt.Errorf("DATABASE_BACKEND must be %q or %q, got %q", BackendDuckDB, BackendMongoDB, c.Database.Backend)
	}
	if c.Database.Collection == "" {
		return fmt.Errorf("MONGODB_COLLECTION must not be empty")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0, got %d", c.Database.Threads)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.StatsTimeout <= 0 {
		return fmt.Errorf("STATS_TIMEOUT must be positive, got %s", c.Server.StatsTimeout)
	}
	if c.Server.ImageMaxBytes <= 0 {
		return fmt.Errorf("IMAGE_PROXY_MAX_BYTES must be positive, got %d", c.Server.ImageMaxBytes)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.Security.RateLimitWindow)
	}
	return nil
}

// validateTableau only checks what is set; missing settings are reported at
// request time by the connection test instead of blocking startup.
func (c *Config) validateTableau() error {
	if c.Tableau.ServerURL != "" {
		if err := validateHTTPURL(c.Tableau.ServerURL); err != nil {
			return fmt.Errorf("TABLEAU_SERVER_URL is invalid: %w", err)
		}
	}
	if c.Tableau.PersonalToken != "" && c.Tableau.TokenName == "" {
		return fmt.Errorf("TABLEAU_TOKEN_NAME is required when TABLEAU_PERSONAL_ACCESS_TOKEN is set")
	}
	if c.Tableau.RequestsPerSecond < 0 {
		return fmt.Errorf("TABLEAU_REQUESTS_PER_SECOND must be >= 0")
	}
	return nil
}

func (c *Config) validateSeed() error {
	if c.Seed.BatchSize < 1 {
		return fmt.Errorf("SEED_BATCH_SIZE must be at least 1, got %d", c.Seed.BatchSize)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL accepts http(s) base URLs without query strings.
func validateHTTPURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	if u.RawQuery != "" {
		return fmt.Errorf("should not contain query parameters")
	}
	return nil
}
