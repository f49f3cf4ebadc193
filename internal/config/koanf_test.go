// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// isolateEnv points config discovery at an empty temp dir so the host's
// files cannot leak into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Setenv(DotenvPathEnvVar, filepath.Join(dir, "missing.env"))
	for _, key := range []string{"MONGO_URI_STRING", "MONGO_URI", "STORE_BACKEND", "HTTP_PORT", "CORS_ORIGINS", "API_CACHE_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(dir)
	return dir
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	want := DatabaseConfig{
		Backend:                BackendMongo,
		Name:                   "speedofwater",
		MaxPoolSize:            5,
		ServerSelectionTimeout: 8 * time.Second,
		ConnectTimeout:         15 * time.Second,
		SocketTimeout:          30 * time.Second,
		MaxIdleTime:            60 * time.Second,
		QueryTimeout:           20 * time.Second,
	}
	if diff := cmp.Diff(want, cfg.Database); diff != "" {
		t.Errorf("Database defaults mismatch (-want +got):\n%s", diff)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.DefaultTopLimit != 10 || cfg.API.MaxTopLimit != 100 {
		t.Errorf("top limits = %d/%d, want 10/100", cfg.API.DefaultTopLimit, cfg.API.MaxTopLimit)
	}
	if cfg.API.DefaultMonthsBack != 12 || cfg.API.MaxMonthsBack != 240 {
		t.Errorf("months back = %d/%d, want 12/240", cfg.API.DefaultMonthsBack, cfg.API.MaxMonthsBack)
	}
	if cfg.API.CacheTTL != 5*time.Minute {
		t.Errorf("API.CacheTTL = %v, want 5m", cfg.API.CacheTTL)
	}
}

func TestLoadWithKoanfFromEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MONGO_URI_STRING", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DATABASE", "sdwis")
	t.Setenv("MONGO_QUERY_TIMEOUT", "5s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("API_CACHE_TTL", "0s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Database.URI != "mongodb://db.internal:27017" {
		t.Errorf("Database.URI = %q", cfg.Database.URI)
	}
	if cfg.Database.Name != "sdwis" {
		t.Errorf("Database.Name = %q", cfg.Database.Name)
	}
	if cfg.Database.QueryTimeout != 5*time.Second {
		t.Errorf("Database.QueryTimeout = %v", cfg.Database.QueryTimeout)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if diff := cmp.Diff([]string{"https://a.example", "https://b.example"}, cfg.Security.CORSOrigins); diff != "" {
		t.Errorf("CORSOrigins mismatch (-want +got):\n%s", diff)
	}
	if cfg.API.CacheTTL != 0 {
		t.Errorf("API.CacheTTL = %v, want 0", cfg.API.CacheTTL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfMongoURIFallback(t *testing.T) {
	isolateEnv(t)
	t.Setenv("MONGO_URI", "mongodb://fallback:27017")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Database.URI != "mongodb://fallback:27017" {
		t.Errorf("Database.URI = %q, want fallback", cfg.Database.URI)
	}

	t.Setenv("MONGO_URI_STRING", "mongodb://primary:27017")
	cfg, err = LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Database.URI != "mongodb://primary:27017" {
		t.Errorf("MONGO_URI_STRING should win, got %q", cfg.Database.URI)
	}
}

func TestLoadWithKoanfMissingURI(t *testing.T) {
	isolateEnv(t)

	_, err := LoadWithKoanf()
	if err == nil || !strings.Contains(err.Error(), "MONGO_URI_STRING") {
		t.Fatalf("expected missing URI error, got %v", err)
	}
}

func TestLoadWithKoanfYAMLThenEnv(t *testing.T) {
	dir := isolateEnv(t)

	yamlPath := filepath.Join(dir, "config.yaml")
	content := `database:
  backend: memory
server:
  port: 7000
api:
  search_limit: 50
`
	if err := os.WriteFile(yamlPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, yamlPath)
	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Database.Backend != BackendMemory {
		t.Errorf("Backend = %q, want memory", cfg.Database.Backend)
	}
	if cfg.API.SearchLimit != 50 {
		t.Errorf("SearchLimit = %d, want 50 from YAML", cfg.API.SearchLimit)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Port = %d, env should override YAML", cfg.Server.Port)
	}
}

func TestLoadWithKoanfDotenv(t *testing.T) {
	dir := isolateEnv(t)

	envPath := filepath.Join(dir, "local.env")
	if err := os.WriteFile(envPath, []byte("MONGO_URI_STRING=mongodb://from-dotenv:27017\nHTTP_PORT=8181\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(DotenvPathEnvVar, envPath)
	// Already-set variables win over .env.
	t.Setenv("HTTP_PORT", "8282")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}
	if cfg.Database.URI != "mongodb://from-dotenv:27017" {
		t.Errorf("Database.URI = %q, want value from .env", cfg.Database.URI)
	}
	if cfg.Server.Port != 8282 {
		t.Errorf("Server.Port = %d, process env should win over .env", cfg.Server.Port)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"MONGO_URI_STRING":   "database.uri",
		"STORE_BACKEND":      "database.backend",
		"HTTP_PORT":          "server.port",
		"DISABLE_RATE_LIMIT": "security.rate_limit_disabled",
		"API_MAX_TOP_LIMIT":  "api.max_top_limit",
		"INGEST_BATCH_SIZE":  "ingest.batch_size",
		"PATH":               "",
		"MONGO_URI":          "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
