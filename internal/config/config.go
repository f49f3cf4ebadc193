// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package config

import (
	"fmt"
	"time"
)

// Store backends.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Ingest   IngestConfig   `koanf:"ingest"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig selects the record store and tunes the MongoDB client.
type DatabaseConfig struct {
	Backend                string        `koanf:"backend"` // mongo or memory
	URI                    string        `koanf:"uri"`
	Name                   string        `koanf:"name"`
	MaxPoolSize            uint64        `koanf:"max_pool_size"`
	ServerSelectionTimeout time.Duration `koanf:"server_selection_timeout"`
	ConnectTimeout         time.Duration `koanf:"connect_timeout"`
	SocketTimeout          time.Duration `koanf:"socket_timeout"`
	MaxIdleTime            time.Duration `koanf:"max_idle_time"`
	QueryTimeout           time.Duration `koanf:"query_timeout"` // applied to every store call
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // development or production
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig bounds query parameters and controls result caching.
type APIConfig struct {
	SearchLimit       int           `koanf:"search_limit"`
	DefaultTopLimit   int           `koanf:"default_top_limit"`
	MaxTopLimit       int           `koanf:"max_top_limit"`
	DefaultMonthsBack int           `koanf:"default_months_back"`
	MaxMonthsBack     int           `koanf:"max_months_back"`
	CacheTTL          time.Duration `koanf:"cache_ttl"` // 0 disables the summary cache
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// IngestConfig controls the sdwis ingest command.
type IngestConfig struct {
	BatchSize    int           `koanf:"batch_size"`
	MaxRetryTime time.Duration `koanf:"max_retry_time"`

	// MaxBatchesPerSecond throttles batch writes; 0 means unthrottled.
	MaxBatchesPerSecond float64 `koanf:"max_batches_per_second"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file and line in each entry.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file, a .env
// file, and the environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
