// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config files searched, first match wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/marinestats/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// sliceConfigPaths are keys that accept comma-separated env values.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Store
	"database_backend":    "database.backend",
	"duckdb_path":         "database.path",
	"duckdb_max_memory":   "database.max_memory",
	"duckdb_threads":      "database.threads",
	"mongodb_uri":         "database.mongo_uri",
	"mongodb_database":    "database.mongo_database",
	"mongodb_collection":  "database.collection",
	"store_query_timeout": "database.query_timeout",

	// Server
	"port":                  "server.port",
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"stats_timeout":         "server.stats_timeout",
	"image_proxy_max_bytes": "server.image_max_bytes",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Statistics and seeding
	"stats_cache_ttl":  "stats.cache_ttl",
	"seed_csv_path":    "seed.csv_path",
	"seed_output_path": "seed.output_path",
	"seed_batch_size":  "seed.batch_size",

	// Copernicus Marine
	"copernicus_marine_username": "copernicus.username",
	"copernicus_marine_password": "copernicus.password",

	// Tableau, names kept from the dashboard deployment
	"tableau_server_url":             "tableau.server_url",
	"next_public_tableau_server_url": "tableau.public_server_url",
	"tableau_site_id":                "tableau.site_id",
	"tableau_username":               "tableau.username",
	"tableau_password":               "tableau.password",
	"tableau_token_name":             "tableau.token_name",
	"tableau_personal_access_token":  "tableau.personal_access_token",
	"tableau_trusted_user":           "tableau.trusted_user",
	"tableau_api_version":            "tableau.api_version",
	"tableau_timeout":                "tableau.timeout",
	"tableau_requests_per_second":    "tableau.requests_per_second",
}

// defaultConfig returns the built-in defaults, applied before file and env.
func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:         "data/marinestats.duckdb",
			MaxMemory:    "1GB",
			Threads:      0,
			Collection:   "occurrences",
			QueryTimeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			StatsTimeout:    15 * time.Second,
			ImageMaxBytes:   10 << 20,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Tableau: TableauConfig{
			APIVersion:        "3.19",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
		},
		Seed: SeedConfig{
			CSVPath:    "occurrence.csv",
			OutputPath: "data/occurrences.json",
			BatchSize:  1000,
		},
	}
}

// Load loads configuration from defaults, config file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// LoadWithKoanf performs the layered load and validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.resolveBackend()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// resolveBackend picks mongodb when only MONGODB_URI is given and duckdb
// when nothing is. An explicit DATABASE_BACKEND is never overridden.
func (c *Config) resolveBackend() {
	if c.Database.Backend != "" {
		return
	}
	if c.Database.MongoURI != "" {
		c.Database.Backend = BackendMongoDB
		return
	}
	c.Database.Backend = BackendDuckDB
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// processSliceFields splits comma-separated env values into slices.
// Values that are already slices (YAML lists) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc maps an environment variable name to a koanf path.
// Returning "" drops the variable.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
