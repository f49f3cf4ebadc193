// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateIngest(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateDatabase() error {
	switch c.Database.Backend {
	case BackendMemory:
		return nil
	case BackendMongo:
	default:
		return fmt.Errorf("STORE_BACKEND must be one of: mongo, memory")
	}

	if err := validateMongoURI(c.Database.URI); err != nil {
		return err
	}
	if c.Database.Name == "" {
		return fmt.Errorf("MONGO_DATABASE is required")
	}
	if c.Database.MaxPoolSize == 0 {
		return fmt.Errorf("MONGO_MAX_POOL_SIZE must be at least 1")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("MONGO_QUERY_TIMEOUT must be positive")
	}
	return nil
}

// validateMongoURI accepts mongodb:// and mongodb+srv:// connection strings.
func validateMongoURI(raw string) error {
	if raw == "" {
		return fmt.Errorf("MONGO_URI_STRING is required when STORE_BACKEND=mongo")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("MONGO_URI_STRING is not a valid URI")
	}
	if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
		return fmt.Errorf("MONGO_URI_STRING must use the mongodb:// or mongodb+srv:// scheme")
	}
	if u.Host == "" {
		return fmt.Errorf("MONGO_URI_STRING must include a host")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateAPI() error {
	a := c.API
	if a.SearchLimit < 1 {
		return fmt.Errorf("API_SEARCH_LIMIT must be at least 1")
	}
	if a.MaxTopLimit < 1 || a.DefaultTopLimit < 1 || a.DefaultTopLimit > a.MaxTopLimit {
		return fmt.Errorf("API_DEFAULT_TOP_LIMIT must be between 1 and API_MAX_TOP_LIMIT (%d)", a.MaxTopLimit)
	}
	if a.MaxMonthsBack < 1 || a.DefaultMonthsBack < 1 || a.DefaultMonthsBack > a.MaxMonthsBack {
		return fmt.Errorf("API_DEFAULT_MONTHS_BACK must be between 1 and API_MAX_MONTHS_BACK (%d)", a.MaxMonthsBack)
	}
	if a.CacheTTL < 0 {
		return fmt.Errorf("API_CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects empty origins; a bare "*" must stand alone.
func (c *Config) validateCORS() error {
	for _, origin := range c.Security.CORSOrigins {
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("CORS_ORIGINS must not contain empty entries")
		}
	}
	if c.hasWildcardCORS() && len(c.Security.CORSOrigins) > 1 {
		return fmt.Errorf("CORS_ORIGINS=* cannot be combined with specific origins")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports a wildcard origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.BatchSize < 1 || c.Ingest.BatchSize > 100000 {
		return fmt.Errorf("INGEST_BATCH_SIZE must be between 1 and 100000")
	}
	if c.Ingest.MaxRetryTime < 0 {
		return fmt.Errorf("INGEST_MAX_RETRY_TIME must not be negative")
	}
	if c.Ingest.MaxBatchesPerSecond < 0 {
		return fmt.Errorf("INGEST_MAX_BATCHES_PER_SECOND must not be negative")
	}
	return nil
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
