// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

// Package config loads marinestats configuration with Koanf v2.
//
// Sources are layered, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/marinestats/config.yaml)
//  3. Environment variables, through the explicit envMappings table
//
// Environment variable names are kept compatible with the original dashboard
// deployment (MONGODB_URI, TABLEAU_SERVER_URL, COPERNICUS_MARINE_USERNAME, ...).
package config

import "time"

// Store backends.
const (
	BackendDuckDB  = "duckdb"
	BackendMongoDB = "mongodb"
)

// Config holds all application configuration.
type Config struct {
	Database   DatabaseConfig   `koanf:"database"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
	Tableau    TableauConfig    `koanf:"tableau"`
	Copernicus CopernicusConfig `koanf:"copernicus"`
	Seed       SeedConfig       `koanf:"seed"`
	Stats      StatsConfig      `koanf:"stats"`
}

// DatabaseConfig selects and configures the occurrence store.
type DatabaseConfig struct {
	// Backend is duckdb or mongodb. Left empty it becomes mongodb when
	// MongoURI is set and duckdb otherwise.
	Backend string `koanf:"backend"`

	// Path is the DuckDB file. ":memory:" keeps everything in RAM.
	Path string `koanf:"path"`

	// MaxMemory is the DuckDB memory limit, e.g. "1GB".
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB worker count. 0 means runtime.NumCPU().
	Threads int `koanf:"threads"`

	// MongoURI is the connection string used when Backend is mongodb.
	MongoURI string `koanf:"mongo_uri"`

	// MongoDatabase names the database; empty uses the one in MongoURI, then "marine".
	MongoDatabase string `koanf:"mongo_database"`

	// Collection holds the occurrence documents.
	Collection string `koanf:"collection"`

	// QueryTimeout bounds a single store query when the caller has no deadline.
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// StatsTimeout is the overall deadline for one statistics aggregation.
	StatsTimeout time.Duration `koanf:"stats_timeout"`

	// ImageMaxBytes caps a proxied image body.
	ImageMaxBytes int64 `koanf:"image_max_bytes"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds the request-shaping knobs of the public API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig maps onto logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// TableauConfig holds Tableau Server / Tableau Cloud integration settings.
// Every field is optional; the strategy used for sign-in depends on which
// ones are set.
type TableauConfig struct {
	ServerURL       string `koanf:"server_url"`
	PublicServerURL string `koanf:"public_server_url"`
	SiteID          string `koanf:"site_id"`
	Username        string `koanf:"username"`
	Password        string `koanf:"password"`
	TokenName       string `koanf:"token_name"`
	PersonalToken   string `koanf:"personal_access_token"`
	TrustedUser     string `koanf:"trusted_user"`
	APIVersion      string `koanf:"api_version"`

	// Timeout applies to each outbound request.
	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond throttles outbound calls. 0 disables throttling.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
}

// CopernicusConfig holds Copernicus Marine credentials.
type CopernicusConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// SeedConfig drives cmd/seed.
type SeedConfig struct {
	CSVPath    string `koanf:"csv_path"`
	OutputPath string `koanf:"output_path"`
	BatchSize  int    `koanf:"batch_size"`
}

// StatsConfig tunes the statistics endpoint.
type StatsConfig struct {
	// CacheTTL > 0 serves repeated requests from memory for that long.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}
