// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/speedofwater/config.yaml",
	"/etc/speedofwater/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotenvPathEnvVar overrides the .env file path.
const DotenvPathEnvVar = "DOTENV_PATH"

// mongoURIFallbackEnvVar is read when MONGO_URI_STRING is not set.
const mongoURIFallbackEnvVar = "MONGO_URI"

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Backend:                BackendMongo,
			URI:                    "",
			Name:                   "speedofwater",
			MaxPoolSize:            5,
			ServerSelectionTimeout: 8 * time.Second,
			ConnectTimeout:         15 * time.Second,
			SocketTimeout:          30 * time.Second,
			MaxIdleTime:            60 * time.Second,
			QueryTimeout:           20 * time.Second,
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		API: APIConfig{
			SearchLimit:       20,
			DefaultTopLimit:   10,
			MaxTopLimit:       100,
			DefaultMonthsBack: 12,
			MaxMonthsBack:     240,
			CacheTTL:          5 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Ingest: IngestConfig{
			BatchSize:    1000,
			MaxRetryTime: 2 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration with Koanf v2:
//  1. Defaults
//  2. Config file (if one exists)
//  3. Environment variables, after .env has been merged into them
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

	if err := loadDotenv(dotenvPath()); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := applyEnvFallbacks(k); err != nil {
		return nil, err
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

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

func dotenvPath() string {
	if p := os.Getenv(DotenvPathEnvVar); p != "" {
		return p
	}
	return ".env"
}

// loadDotenv merges a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// applyEnvFallbacks fills settings that accept a secondary variable name.
func applyEnvFallbacks(k *koanf.Koanf) error {
	if k.String("database.uri") != "" {
		return nil
	}
	if uri := os.Getenv(mongoURIFallbackEnvVar); uri != "" {
		if err := k.Set("database.uri", uri); err != nil {
			return fmt.Errorf("failed to set database.uri: %w", err)
		}
	}
	return nil
}

// sliceConfigPaths are parsed from comma-separated strings when set from env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

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
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Database
	"store_backend":                  "database.backend",
	"mongo_uri_string":               "database.uri",
	"mongo_database":                 "database.name",
	"mongo_max_pool_size":            "database.max_pool_size",
	"mongo_server_selection_timeout": "database.server_selection_timeout",
	"mongo_connect_timeout":          "database.connect_timeout",
	"mongo_socket_timeout":           "database.socket_timeout",
	"mongo_max_idle_time":            "database.max_idle_time",
	"mongo_query_timeout":            "database.query_timeout",

	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// API
	"api_search_limit":        "api.search_limit",
	"api_default_top_limit":   "api.default_top_limit",
	"api_max_top_limit":       "api.max_top_limit",
	"api_default_months_back": "api.default_months_back",
	"api_max_months_back":     "api.max_months_back",
	"api_cache_ttl":           "api.cache_ttl",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Ingest
	"ingest_batch_size":             "ingest.batch_size",
	"ingest_max_retry_time":         "ingest.max_retry_time",
	"ingest_max_batches_per_second": "ingest.max_batches_per_second",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path, or
// "" to skip it.
//
// Examples:
//   - MONGO_URI_STRING -> database.uri
//   - HTTP_PORT -> server.port
//   - API_CACHE_TTL -> api.cache_ttl
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
